package menu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// DefaultSourceURL is the public dish list endpoint
const DefaultSourceURL = "https://edu.std-900.ist.mospolytech.ru/labs/api/dishes"

// Source fetches raw dish records from wherever the menu lives.
type Source interface {
	Fetch(ctx context.Context) ([]RawDish, error)
}

type HTTPSource struct {
	URL    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]RawDish, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &CatalogLoadError{Op: "request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &CatalogLoadError{Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CatalogLoadError{Op: "fetch", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CatalogLoadError{Op: "read", Err: err}
	}

	return DecodeRawDishes(body)
}

// DecodeRawDishes parses a JSON array of dish records.
func DecodeRawDishes(body []byte) ([]RawDish, error) {
	var raw []RawDish
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &CatalogLoadError{Op: "decode", Err: err}
	}
	return raw, nil
}
