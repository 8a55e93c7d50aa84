package server

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"profit/internal/domain"
	"profit/pkg/errcodes"
	"profit/pkg/httpx/reply"
)

// Доменные коды, у которых свой HTTP статус; остальное решает reply.Error.
var statusByCode = map[failure.ErrorCode]int{ //nolint:gochecknoglobals
	errcodes.PercentageNotFound: http.StatusServiceUnavailable,
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/profit", func(r chi.Router) {
				r.Get("/", handler(s.getV1Profits))
				r.Post("/", handler(s.postV1Profit))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			writeError(r.Context(), w, err)
		}
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		if status, ok := statusByCode[appErr.Code]; ok {
			reply.CodedError(ctx, w, err, status, appErr.Code, appErr.Message)
			return
		}
	}

	reply.Error(ctx, w, err)
}
