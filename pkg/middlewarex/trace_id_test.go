package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"profit/pkg/contextx"
	"profit/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
	}{
		{
			name:     "Propagated",
			incoming: "client-trace",
		},
		{
			name: "Generated",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var fromCtx contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				fromCtx = traceID
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set("X-Trace-Id", tc.incoming)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			rq.NotEmpty(fromCtx)
			rq.Equal(fromCtx.String(), rec.Header().Get("X-Trace-Id"))

			if tc.incoming != "" {
				rq.Equal(tc.incoming, fromCtx.String())
			}
		})
	}
}
