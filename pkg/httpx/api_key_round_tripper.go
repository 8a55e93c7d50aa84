package httpx

import (
	"fmt"
	"net/http"
)

const headerNameAPIKey = "X-Api-Key"

// APIKeyRoundTripper sets a static API key header on every outgoing request.
type APIKeyRoundTripper struct {
	next   http.RoundTripper
	apiKey string
}

func NewAPIKeyRoundTripper(next http.RoundTripper, apiKey string) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:   next,
		apiKey: apiKey,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.apiKey != "" {
		req = req.Clone(req.Context())
		req.Header.Set(headerNameAPIKey, rt.apiKey)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
