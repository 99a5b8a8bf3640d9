package middleware

import (
	"mime"
	"net/http"

	"github.com/vfg2006/inventory-intelligence-api/pkg/apiErrors"
)

// MaxBodyBytes é o tamanho máximo aceito para corpos JSON
const MaxBodyBytes = 4 << 20

// JSONBody exige Content-Type application/json e limita o tamanho do corpo
func JSONBody() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Content-Type deve ser application/json", nil)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}
