package importer

import (
	"fmt"
	"time"
)

var fixedNow = time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)

func testOptions(currency string) Options {
	n := 0
	return Options{
		DefaultCurrency: currency,
		Now:             func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}
