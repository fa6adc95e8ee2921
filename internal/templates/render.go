// Package templates ties the view components to HTTP responses.
package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/analysishub/analysishub/internal/api/authz"
	"github.com/analysishub/analysishub/internal/api/flash"
	"github.com/analysishub/analysishub/internal/templates/layouts"
)

// RenderPage writes body inside the site shell, draining any queued flash
// messages into the response. extra holds messages produced while handling
// this same request, typically validation errors shown without a redirect.
func RenderPage(w http.ResponseWriter, r *http.Request, title string, body templ.Component, extra ...flash.Message) {
	user := authz.UserFromContext(r.Context())
	flashes := append(flash.Pop(w, r), extra...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Base(title, user, flashes, body).Render(r.Context(), w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("page", title).Msg("Failed to render page")
	}
}
