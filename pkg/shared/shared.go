package shared

import (
	"net/http"

	"github.com/go-playground/form"

	"github.com/iota-uz/staffcal/pkg/htmx"
)

// Decoder decodes url.Values into tagged structs for query and form parsing.
var Decoder = form.NewDecoder()

// Redirect issues an HTMX client-side redirect for HTMX requests and a
// plain 302 otherwise.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if htmx.IsHxRequest(r) {
		htmx.Redirect(w, path)
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}
