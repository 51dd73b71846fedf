package htmx

import "net/http"

// IsHxRequest reports whether the request was issued by HTMX.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}

// IsBoosted reports whether the request came from an hx-boost element.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("Hx-Boosted") == "true"
}

// Redirect instructs the HTMX client to perform a full-page redirect.
func Redirect(w http.ResponseWriter, path string) {
	w.Header().Set("Hx-Redirect", path)
}

// Retarget overrides the client-side target element for the response swap.
func Retarget(w http.ResponseWriter, target string) {
	w.Header().Set("Hx-Retarget", target)
}

// Reswap overrides the swap strategy for the response.
func Reswap(w http.ResponseWriter, strategy string) {
	w.Header().Set("Hx-Reswap", strategy)
}

// Trigger asks the client to fire the named event after the swap settles.
func Trigger(w http.ResponseWriter, event string) {
	w.Header().Set("Hx-Trigger", event)
}

// PushURL pushes a new URL into the browser history.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Push-Url", url)
}
