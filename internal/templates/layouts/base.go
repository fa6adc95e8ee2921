// Package layouts provides the page shell shared by every view.
package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/analysishub/analysishub/internal/api/authz"
	"github.com/analysishub/analysishub/internal/api/flash"
)

const stylesheet = `
:root { --brand: #4CAF50; --brand-dark: #06402B; --grid: #A3CA9B; --ink: #212121; --body: #4F4F4F; --rule: #E3DEDE; }
* { box-sizing: border-box; }
body { margin: 0; font-family: Helvetica, Arial, sans-serif; color: var(--body); background: #fafafa; }
header.site { display: flex; align-items: center; justify-content: space-between; padding: 0.75rem 1.5rem; background: var(--brand-dark); color: #fff; }
header.site .brand { font-weight: bold; letter-spacing: 0.08em; color: #fff; text-decoration: none; }
header.site nav a { color: #fff; margin-left: 1rem; text-decoration: none; }
header.site nav a:hover { text-decoration: underline; }
main { max-width: 60rem; margin: 1.5rem auto; padding: 0 1rem; }
h1, h2 { color: var(--ink); }
.alert { padding: 0.6rem 1rem; border-radius: 4px; margin-bottom: 0.6rem; }
.alert-success { background: #e6f4ea; border: 1px solid var(--grid); color: var(--brand-dark); }
.alert-danger { background: #fdecea; border: 1px solid #f5c6cb; color: #721c24; }
.alert-info { background: #e8f0fe; border: 1px solid #b6d4fe; color: #084298; }
form.report label { display: block; margin: 0.7rem 0 0.2rem; color: var(--ink); }
form.report input[type=text], form.report input[type=number], form.report input[type=date], form.report textarea, form.report input[type=password] { width: 100%; padding: 0.45rem; border: 1px solid var(--rule); border-radius: 4px; }
form.report textarea { min-height: 6rem; }
fieldset { border: 1px solid var(--rule); border-radius: 4px; margin-bottom: 1.2rem; }
legend { color: var(--brand-dark); font-weight: bold; padding: 0 0.4rem; }
.btn { display: inline-block; padding: 0.5rem 1.1rem; border: 0; border-radius: 4px; background: var(--brand); color: #fff; cursor: pointer; text-decoration: none; }
.btn-danger { background: #c0392b; }
.btn-secondary { background: var(--body); }
table.listing { width: 100%; border-collapse: collapse; background: #fff; }
table.listing th { background: var(--brand); color: #fff; text-align: left; }
table.listing th, table.listing td { padding: 0.5rem 0.7rem; border: 1px solid var(--grid); }
.actions form { display: inline; }
.choice-grid { display: flex; gap: 1rem; flex-wrap: wrap; }
.choice-card { flex: 1 1 16rem; background: #fff; border: 1px solid var(--grid); border-radius: 6px; padding: 1.2rem; }
`

// Base wraps body in the site shell: head, navigation for the signed-in
// state, and any flash notices.
func Base(title string, user *authz.AuthUser, flashes []flash.Message, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s - Analysis Hub</title><style>%s</style></head><body>`,
			templ.EscapeString(title), stylesheet,
		); err != nil {
			return err
		}

		if err := renderNav(w, user); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		for _, msg := range flashes {
			class := "alert-info"
			switch msg.Category {
			case flash.CategorySuccess:
				class = "alert-success"
			case flash.CategoryDanger:
				class = "alert-danger"
			}
			if _, err := fmt.Fprintf(w, `<div class="alert %s">%s</div>`, class, templ.EscapeString(msg.Text)); err != nil {
				return err
			}
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func renderNav(w io.Writer, user *authz.AuthUser) error {
	if _, err := io.WriteString(w, `<header class="site"><a class="brand" href="/">ANALYSIS HUB</a><nav>`); err != nil {
		return err
	}
	if user != nil {
		if _, err := fmt.Fprintf(w,
			`<span>%s (%s)</span><a href="/">New Report</a><a href="/players">Players</a><a href="/matches">Matches</a><a href="/logout">Log Out</a>`,
			templ.EscapeString(user.Username), templ.EscapeString(user.ClubName),
		); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<a href="/login">Log In</a><a href="/register">Register</a>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav></header>`)
	return err
}
