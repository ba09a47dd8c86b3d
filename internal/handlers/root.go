package handlers

import "net/http"

// Greeting is the body returned by the root endpoint.
const Greeting = "Jeg æder blåbærsyltetøj!"

// NewRootHandler returns an HTTP handler that always answers with Greeting.
// @Summary Greeting
// @Description Returns a fixed UTF-8 greeting. Headers and body are ignored.
// @Tags root
// @Produce plain
// @Success 200 {string} string "Jeg æder blåbærsyltetøj!"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(Greeting))
	}
}
