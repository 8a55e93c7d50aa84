package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"profit/pkg/logx"
	"profit/pkg/middlewarex"
)

type RouterOptions struct {
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
	// Metrics опционален: без него запросы не считаются.
	Metrics *middlewarex.HTTPMetrics
}

func NewRouter(s Server, opts RouterOptions) http.Handler {
	masker := opts.SensitiveDataMasker
	if masker == nil {
		masker = logx.NewSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
	)

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
