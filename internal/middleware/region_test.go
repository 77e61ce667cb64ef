package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goaltracker/internal/infra/geoip"
)

func TestRegion(t *testing.T) {
	resolver := geoip.Static{"203.0.113.7": "JP"}
	tests := []struct {
		name        string
		setup       func(r *http.Request)
		wantCountry string
		wantCur     string
	}{
		{
			name:    "no hints uses fallback",
			wantCur: "USD",
		},
		{
			name: "country header",
			setup: func(r *http.Request) {
				r.Header.Set("CF-IPCountry", "gb")
			},
			wantCountry: "GB",
			wantCur:     "GBP",
		},
		{
			name: "accept-language region",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "de-DE,de;q=0.9")
			},
			wantCountry: "DE",
			wantCur:     "EUR",
		},
		{
			name: "geoip lookup",
			setup: func(r *http.Request) {
				r.RemoteAddr = "203.0.113.7:5555"
			},
			wantCountry: "JP",
			wantCur:     "JPY",
		},
		{
			name: "explicit currency wins",
			setup: func(r *http.Request) {
				r.Header.Set("CF-IPCountry", "GB")
				r.Header.Set("X-Currency", "cad")
			},
			wantCountry: "GB",
			wantCur:     "CAD",
		},
		{
			name: "invalid explicit currency ignored",
			setup: func(r *http.Request) {
				r.Header.Set("X-Currency", "dollars")
			},
			wantCur: "USD",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotCountry, gotCur string
			h := Region("USD", resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCountry = CountryFromContext(r.Context())
				gotCur = CurrencyFromContext(r.Context(), "XXX")
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "198.51.100.1:1234"
			if tc.setup != nil {
				tc.setup(req)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if gotCountry != tc.wantCountry {
				t.Fatalf("CountryFromContext() = %q, want %q", gotCountry, tc.wantCountry)
			}
			if gotCur != tc.wantCur {
				t.Fatalf("CurrencyFromContext() = %q, want %q", gotCur, tc.wantCur)
			}
		})
	}
}

func TestCurrencyFromContextFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := CurrencyFromContext(req.Context(), "EUR"); got != "EUR" {
		t.Fatalf("CurrencyFromContext() = %q, want %q", got, "EUR")
	}
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://dash.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/campaign", nil)
	req.Header.Set("Origin", "https://dash.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example" {
		t.Fatalf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/campaign", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected Allow-Origin %q for unlisted origin", got)
	}
}
