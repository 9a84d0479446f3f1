// Package opensheet fetches spreadsheet tabs through the opensheet JSON API,
// which exposes every row of a published Google Sheet as a flat object keyed
// by the header row.
package opensheet

//go:generate go run go.uber.org/mock/mockgen -source=./opensheet.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"charter/config"

	"github.com/rs/zerolog/log"
)

type Client interface {
	Rows(ctx context.Context, tab string) ([]map[string]string, error)
}

type clientImpl struct {
	baseURL string
	sheetID string
	http    *http.Client
}

func New(cfg *config.Config) Client {
	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Sheets.BaseURL, "/"),
		sheetID: cfg.Sheets.SheetID,
		http: &http.Client{
			Timeout: time.Duration(cfg.Sheets.TimeoutSeconds) * time.Second,
		},
	}
}

// Rows implements Client.
func (c *clientImpl) Rows(ctx context.Context, tab string) ([]map[string]string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.sheetID), url.PathEscape(tab))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet tab %q: %w", tab, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet tab %q returned status %d", tab, resp.StatusCode)
	}

	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode sheet tab %q: %w", tab, err)
	}

	rows := make([]map[string]string, 0, len(raw))
	for _, r := range raw {
		row := make(map[string]string, len(r))
		for key, value := range r {
			row[key] = stringify(value)
		}
		rows = append(rows, row)
	}

	log.Debug().Str("tab", tab).Int("rows", len(rows)).Msg("fetched sheet tab")

	return rows, nil
}

// stringify flattens the occasional non-string cell (opensheet passes numeric
// cells through as JSON numbers) back to its text form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
