package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnavailable is returned when the resolver has no database loaded.
var ErrUnavailable = errors.New("geoip resolver unavailable")

// CountryResolver maps a client IP to an ISO 3166 alpha-2 country code.
type CountryResolver interface {
	CountryCode(ip string) (string, error)
}

// Resolver performs country lookups against a MaxMind GeoIP2/GeoLite2 database.
type Resolver struct {
	reader *geoip2.Reader
}

// Open loads the database at path. An empty path yields (nil, nil) so callers
// can treat currency inference as disabled.
func Open(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// CountryCode returns the upper-case country code for ip, or "" when the
// database has no country for it.
func (r *Resolver) CountryCode(ip string) (string, error) {
	if r == nil || r.reader == nil {
		return "", ErrUnavailable
	}
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return "", fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.Country(parsed)
	if err != nil {
		return "", fmt.Errorf("geoip: lookup country: %w", err)
	}
	if record == nil {
		return "", nil
	}
	return strings.ToUpper(record.Country.IsoCode), nil
}

// Close releases the database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}

// Static resolves from a fixed IP to country table. It backs tests and local
// runs without a database.
type Static map[string]string

// CountryCode implements CountryResolver.
func (s Static) CountryCode(ip string) (string, error) {
	if net.ParseIP(strings.TrimSpace(ip)) == nil {
		return "", fmt.Errorf("geoip: invalid ip %q", ip)
	}
	return strings.ToUpper(s[strings.TrimSpace(ip)]), nil
}
