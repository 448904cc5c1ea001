package handler

import (
	"net/http"
	"strings"

	"github.com/betenlace/partners-cpa-api/internal/usecases/redirecting"
	"github.com/betenlace/partners-cpa-api/pkg/utils"
)

// Redirect atende a superfície pública: qualquer path fora de /v1 é tratado
// como caminho de campanha e devolve 302 para o destino resolvido.
func Redirect(service redirecting.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		var segments []string
		for _, seg := range strings.Split(r.URL.Path, "/") {
			if seg != "" {
				segments = append(segments, seg)
			}
		}

		target := service.Resolve(r.Context(), redirecting.Request{
			Segments:  segments,
			UserAgent: r.UserAgent(),
			ClientIP:  utils.ClientIP(r),
		})

		http.Redirect(w, r, target, http.StatusFound)
	})
}
