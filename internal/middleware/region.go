package middleware

import (
	"context"
	"net/http"
	"strings"

	"goaltracker/internal/infra/geoip"
	"goaltracker/internal/money"
)

type countryContextKey struct{}
type currencyContextKey struct{}

// Region stores the caller's country and preferred currency on the request
// context. An explicit X-Currency header wins, then the country's tender
// currency, then fallback.
func Region(fallback string, resolver geoip.CountryResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := ResolveCountry(r, resolver)
			cur := money.CurrencyForCountry(country, fallback)
			if v := r.Header.Get("X-Currency"); v != "" {
				if code, err := money.NormalizeCode(v); err == nil {
					cur = code
				}
			}
			ctx := context.WithValue(r.Context(), currencyContextKey{}, cur)
			if country != "" {
				ctx = context.WithValue(ctx, countryContextKey{}, country)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CountryFromContext returns the ISO country code stored by Region.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(countryContextKey{}).(string); ok {
		return v
	}
	return ""
}

// CurrencyFromContext returns the currency stored by Region, or fallback.
func CurrencyFromContext(ctx context.Context, fallback string) string {
	if v, ok := ctx.Value(currencyContextKey{}).(string); ok && v != "" {
		return v
	}
	return fallback
}

// ResolveCountry resolves a best-effort ISO country code for the request.
func ResolveCountry(r *http.Request, resolver geoip.CountryResolver) string {
	if r == nil {
		return ""
	}
	for _, key := range []string{"X-Country-Code", "CF-IPCountry", "X-Appengine-Country"} {
		if val := strings.TrimSpace(r.Header.Get(key)); len(val) == 2 {
			return strings.ToUpper(val)
		}
	}
	if region := localeRegion(r.Header.Get("Accept-Language")); region != "" {
		return region
	}
	if resolver != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := resolver.CountryCode(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}

func localeRegion(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		token := strings.TrimSpace(strings.Split(part, ";")[0])
		if token == "" {
			continue
		}
		if idx := strings.IndexAny(token, "-_"); idx > 0 && len(token)-idx-1 == 2 {
			return strings.ToUpper(token[idx+1:])
		}
	}
	return ""
}
