package percentage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"profit/internal/domain/service/profit"
	"profit/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// response — ответ провайдера; лишние поля игнорируются.
type response struct {
	Percentage *int `json:"percentage"`
}

type Client struct {
	url        string
	httpClient *http.Client
}

type Options struct {
	URL            string
	APIKey         string
	Timeout        time.Duration
	Transport      http.RoundTripper // по умолчанию http.DefaultTransport
	LoggingOptions []httpx.Option
}

func NewClient(opts Options) *Client {
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	transport = httpx.NewLoggingRoundTripper(
		httpx.NewAPIKeyRoundTripper(transport, opts.APIKey),
		opts.LoggingOptions...,
	)

	return &Client{
		url: opts.URL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
	}
}

// GetPercentage возвращает profit.ErrNoPercentage, если поле percentage
// отсутствует или равно null.
func (c *Client) GetPercentage(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body *response

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("json.Decode: %w", err)
	}

	if body == nil || body.Percentage == nil {
		return 0, profit.ErrNoPercentage
	}

	return *body.Percentage, nil
}
