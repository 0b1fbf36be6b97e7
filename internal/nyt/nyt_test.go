package nyt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_URL(t *testing.T) {
	day := time.Date(2026, time.March, 7, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "https://www.nytimes.com/svc/wordle/v2/2026-03-07.json", (&Client{}).URL(day))
	assert.Equal(t, "http://local/2026-03-07.json", (&Client{BaseURL: "http://local"}).URL(day))
}

func TestClient_Daily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2026-10-16.json", r.URL.Path)
		w.Write([]byte(`{"id": 1234, "solution": "crane", "print_date": "2026-10-16", "days_since_launch": 1580, "editor": "Tracy Bennett"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	m, err := c.Daily(t.Context(), time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Manifest{
		ID:              1234,
		Solution:        "crane",
		PrintDate:       "2026-10-16",
		DaysSinceLaunch: 1580,
		Editor:          "Tracy Bennett",
	}, m)
}

func TestClient_DailyErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) },
			wantErr: "404",
		},
		{
			name:    "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{`)) },
			wantErr: "decoding manifest",
		},
		{
			name:    "no solution",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"id": 1}`)) },
			wantErr: "no solution",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
			_, err := c.Daily(t.Context(), time.Now())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
