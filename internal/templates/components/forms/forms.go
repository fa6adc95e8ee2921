// Package forms renders the shared input controls used by the report forms.
package forms

import (
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

type Kind int

const (
	Text Kind = iota
	Number
	Decimal
	Date
	Textarea
)

// Field describes one form control.
type Field struct {
	Name  string
	Label string
	Kind  Kind
}

// Values carries the current form state, either from a stored record or from
// a rejected submission being shown again for correction.
type Values map[string]string

func (v Values) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// FromURLValues copies submitted form data so a rejected submission can be
// redisplayed exactly as the user typed it.
func FromURLValues(form url.Values) Values {
	v := make(Values, len(form))
	for name := range form {
		v[name] = form.Get(name)
	}
	return v
}

// RenderField writes the label and input for a single field.
func RenderField(w io.Writer, f Field, value string) error {
	name := templ.EscapeString(f.Name)
	if _, err := fmt.Fprintf(w, `<label for="%s">%s</label>`, name, templ.EscapeString(f.Label)); err != nil {
		return err
	}

	escaped := templ.EscapeString(value)
	switch f.Kind {
	case Textarea:
		_, err := fmt.Fprintf(w, `<textarea id="%s" name="%s">%s</textarea>`, name, name, escaped)
		return err
	case Number:
		_, err := fmt.Fprintf(w, `<input type="number" id="%s" name="%s" value="%s">`, name, name, escaped)
		return err
	case Decimal:
		_, err := fmt.Fprintf(w, `<input type="number" step="0.1" id="%s" name="%s" value="%s">`, name, name, escaped)
		return err
	case Date:
		_, err := fmt.Fprintf(w, `<input type="date" id="%s" name="%s" value="%s">`, name, name, escaped)
		return err
	default:
		_, err := fmt.Fprintf(w, `<input type="text" id="%s" name="%s" value="%s">`, name, name, escaped)
		return err
	}
}

// RenderFieldset writes a titled group of fields.
func RenderFieldset(w io.Writer, legend string, fields []Field, values Values) error {
	if _, err := fmt.Fprintf(w, `<fieldset><legend>%s</legend>`, templ.EscapeString(legend)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := RenderField(w, f, values.Get(f.Name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</fieldset>`)
	return err
}

// RenderLogoInput writes the optional club logo upload control. The form
// embedding it must use multipart encoding.
func RenderLogoInput(w io.Writer) error {
	_, err := io.WriteString(w,
		`<fieldset><legend>Club Logo (optional)</legend>`+
			`<label for="club_logo">Logo image for the report header (PNG, JPG or GIF)</label>`+
			`<input type="file" id="club_logo" name="club_logo" accept=".png,.jpg,.jpeg,.gif">`+
			`</fieldset>`)
	return err
}
