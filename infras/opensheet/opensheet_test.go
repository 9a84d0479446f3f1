package opensheet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"charter/config"
	"charter/infras/opensheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) opensheet.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Sheets.BaseURL = server.URL
	cfg.Sheets.SheetID = "test-sheet"
	cfg.Sheets.TimeoutSeconds = 5

	return opensheet.New(cfg)
}

func TestRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-sheet/Availability", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Yacht_ID": "Y-001", "Yacht_Size": 58, "Notes": null},
			{"Yacht_ID": "Y-002", "Yacht_Size": "72"}
		]`))
	})

	rows, err := client.Rows(context.Background(), "Availability")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Y-001", rows[0]["Yacht_ID"])
	assert.Equal(t, "58", rows[0]["Yacht_Size"], "numeric cells flatten to text")
	assert.Equal(t, "", rows[0]["Notes"], "null cells flatten to empty")
	assert.Equal(t, "72", rows[1]["Yacht_Size"])
}

func TestRowsStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.Rows(context.Background(), "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestRowsDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	})

	_, err := client.Rows(context.Background(), "1")
	assert.Error(t, err)
}
