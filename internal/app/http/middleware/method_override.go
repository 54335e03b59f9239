package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// MethodOverride rewrites POST requests carrying a _method form field into
// the verb the field names. Browser forms cannot issue DELETE directly, so
// the delete buttons post with _method=DELETE. Runs before routing, which
// is why it wraps the engine instead of sitting in its middleware chain.
// The body is restored after peeking so later middleware can still read it.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			body, err := io.ReadAll(r.Body)
			if err == nil {
				r.Body = io.NopCloser(bytes.NewReader(body))
				if values, err := url.ParseQuery(string(body)); err == nil {
					switch strings.ToUpper(values.Get("_method")) {
					case http.MethodDelete:
						r.Method = http.MethodDelete
					case http.MethodPut:
						r.Method = http.MethodPut
					}
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
