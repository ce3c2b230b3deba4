package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"somrates-bot/internal/application"
)

// ERAPIFx fetches fiat exchange rates from open.er-api.com.
type ERAPIFx struct {
	BaseURL string
	Client  *http.Client
}

var _ application.FxFeed = (*ERAPIFx)(nil)

type erLatestResp struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (p *ERAPIFx) Rate(ctx context.Context, base, quote string) (float64, error) {
	if p.BaseURL == "" {
		return 0, errors.New("erapi: missing base url")
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return 0, fmt.Errorf("erapi: invalid base url: %w", err)
	}
	u.Path = "/v6/latest/" + strings.ToUpper(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("erapi: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erapi: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("erapi: status %d", resp.StatusCode)
	}

	var body erLatestResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("erapi: decode response: %w", err)
	}
	if len(body.Rates) == 0 {
		return 0, errors.New("erapi: missing rates field")
	}

	// The feed's key casing is not stable; probe exact case, then lower.
	for _, key := range []string{quote, strings.ToLower(quote)} {
		if rate, ok := body.Rates[key]; ok {
			if rate <= 0 {
				return 0, fmt.Errorf("erapi: non-positive rate %v for %s", rate, quote)
			}
			return rate, nil
		}
	}
	return 0, fmt.Errorf("erapi: missing rate for %s", quote)
}
