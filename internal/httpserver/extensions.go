package httpserver

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/kubeonoff/kubeonoff/internal/config"
)

// newExtensionProxy forwards /v1/kubeonoff/extensions/<name>/<rest> to
// <base>/<rest>, passing the acting user along.
func newExtensionProxy(logger *slog.Logger, ext config.Extension) http.Handler {
	prefix := extensionsPrefix + ext.Name

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, prefix)
			pr.Out.URL.RawPath = ""
			pr.SetURL(ext.BaseURL)
			pr.SetXForwarded()
			pr.Out.Header.Set(forwardedUserHeader, userFrom(pr.In.Context()))
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.WarnContext(r.Context(), "extension proxy failed",
				"extension", ext.Name,
				"path", r.URL.Path,
				"reason", err,
			)

			http.Error(w, "extension "+ext.Name+" unavailable", http.StatusBadGateway)
		},
	}
}
