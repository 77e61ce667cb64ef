package geoip

import (
	"errors"
	"testing"
)

func TestOpenWithoutPathDisablesLookups(t *testing.T) {
	r, err := Open("  ")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if r != nil {
		t.Fatalf("Open(\"\") = %v, want nil", r)
	}
	if _, err := r.CountryCode("8.8.8.8"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("CountryCode on nil resolver error = %v, want ErrUnavailable", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on nil resolver returned %v", err)
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	if _, err := Open("/nonexistent/GeoLite2-Country.mmdb"); err == nil {
		t.Fatal("expected error opening a missing database")
	}
}

func TestStaticResolver(t *testing.T) {
	s := Static{"203.0.113.7": "gb"}
	tests := []struct {
		ip      string
		want    string
		wantErr bool
	}{
		{ip: "203.0.113.7", want: "GB"},
		{ip: "198.51.100.1", want: ""},
		{ip: "not-an-ip", wantErr: true},
	}
	for _, tt := range tests {
		got, err := s.CountryCode(tt.ip)
		if (err != nil) != tt.wantErr {
			t.Fatalf("CountryCode(%q) error = %v, wantErr %v", tt.ip, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("CountryCode(%q) = %q, want %q", tt.ip, got, tt.want)
		}
	}
}
