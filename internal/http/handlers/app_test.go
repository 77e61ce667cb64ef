package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"goaltracker/internal/domain"
)

func TestFailMapsDomainErrors(t *testing.T) {
	tests := []struct {
		err      error
		status   int
		wantCode string
	}{
		{err: fmt.Errorf("campaign x: %w", domain.ErrNotFound), status: http.StatusNotFound, wantCode: "not_found"},
		{err: domain.ErrNoActiveCampaign, status: http.StatusConflict, wantCode: "no_active_campaign"},
		{err: fmt.Errorf("%w: title is required", domain.ErrInvalidCampaign), status: http.StatusBadRequest, wantCode: "bad_request"},
		{err: domain.ErrInvalidDonation, status: http.StatusBadRequest, wantCode: "bad_request"},
		{err: domain.ErrUnsupportedFormat, status: http.StatusUnsupportedMediaType, wantCode: "unsupported_format"},
		{err: domain.ErrChannelNotAttached, status: http.StatusConflict, wantCode: "channel_not_connected"},
		{err: fmt.Errorf("youtube: %w", domain.ErrProviderFailure), status: http.StatusBadGateway, wantCode: "provider_failure"},
		{err: context.DeadlineExceeded, status: http.StatusGatewayTimeout, wantCode: "timeout"},
		{err: errors.New("disk on fire"), status: http.StatusInternalServerError, wantCode: "internal"},
	}

	app := &App{Logger: zerolog.Nop()}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		app.fail(rr, httptest.NewRequest(http.MethodGet, "/v1/campaign", nil), tt.err)
		if rr.Code != tt.status {
			t.Fatalf("fail(%v) status = %d, want %d", tt.err, rr.Code, tt.status)
		}
		var body errorBody
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Error.Code != tt.wantCode {
			t.Fatalf("fail(%v) code = %q, want %q", tt.err, body.Error.Code, tt.wantCode)
		}
	}
}

func TestFailHidesInternalErrors(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	rr := httptest.NewRecorder()
	app.fail(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password=hunter2"))
	if strings.Contains(rr.Body.String(), "hunter2") {
		t.Fatalf("internal error leaked: %s", rr.Body.String())
	}
}

func TestImportSourceNames(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		contentType string
		want        string
	}{
		{name: "default text", target: "/v1/imports", want: "paste.txt"},
		{name: "csv query", target: "/v1/imports?format=csv", want: "paste.csv"},
		{name: "csv content type", target: "/v1/imports", contentType: "text/csv; charset=utf-8", want: "paste.csv"},
		{name: "unknown format", target: "/v1/imports?format=XLSX", want: "paste.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader("Alice: 5"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			got, body, err := importSource(req)
			if err != nil {
				t.Fatalf("importSource() error = %v", err)
			}
			defer body.Close()
			if got != tt.want {
				t.Fatalf("importSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImportSourceMultipartWithoutFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/imports", strings.NewReader("--x--\r\n"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	if _, _, err := importSource(req); err == nil {
		t.Fatal("expected error for multipart body without a file field")
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 10},
		{query: "limit=3", want: 3},
		{query: "limit=0", want: 0},
		{query: "limit=-1", want: 10},
		{query: "limit=abc", want: 10},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/leaderboard?"+tt.query, nil)
		if got := queryInt(req, "limit", 10); got != tt.want {
			t.Fatalf("queryInt(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
