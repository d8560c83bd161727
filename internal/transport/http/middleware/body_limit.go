package middleware

import (
	"mime"
	"net/http"

	"hirecost/internal/transport/http/api"
)

// BodyLimit caps request bodies and requires JSON on requests that send one.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
				next.ServeHTTP(w, r)
				return
			}
			if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
				api.Fail(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "request body must be application/json", GetRequestID(r.Context()))
				return
			}
			if maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
