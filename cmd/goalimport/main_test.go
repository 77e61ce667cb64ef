package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
	"goaltracker/internal/infra"
)

func sampleDonations() []domain.Donation {
	at := time.Date(2024, 2, 10, 19, 0, 0, 0, time.UTC)
	return []domain.Donation{
		{ID: "1", Contributor: "Alice", Amount: decimal.NewFromInt(40), Currency: "USD", Timestamp: at, Source: domain.SourceManual},
		{ID: "2", Contributor: "Bob", Amount: decimal.NewFromInt(100), Currency: "USD", Timestamp: at, Source: domain.SourceManual},
		{ID: "3", Contributor: "Alice", Amount: decimal.NewFromInt(10), Currency: "USD", Timestamp: at, Source: domain.SourceManual},
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, sampleDonations(), "USD", decimal.NewFromInt(30), decimal.NewFromInt(1050), 1)
	out := buf.String()

	for _, want := range []string{
		"Imported 3 donations",
		"Total: $150 (after 30% cut: $105)",
		"Progress: 10.0% of $1,050",
		"Bob",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Alice") {
		t.Fatalf("report should list only the top contributor:\n%s", out)
	}
}

func TestExportWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if err := export(dir, sampleDonations(), "USD"); err != nil {
		t.Fatalf("export returned error: %v", err)
	}
	donations, err := os.ReadFile(filepath.Join(dir, "donations.csv"))
	if err != nil {
		t.Fatalf("read donations.csv: %v", err)
	}
	if lines := strings.Count(string(donations), "\n"); lines != 4 {
		t.Fatalf("donations.csv has %d lines, want 4", lines)
	}
	contributors, err := os.ReadFile(filepath.Join(dir, "contributors.csv"))
	if err != nil {
		t.Fatalf("read contributors.csv: %v", err)
	}
	if !strings.Contains(string(contributors), "1,Bob,100.00,1") {
		t.Fatalf("contributors.csv = %q", contributors)
	}
}

func TestCLIOptionsUseSharedConfig(t *testing.T) {
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("PLATFORM_CUT_PERCENT", "12.5")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("MAX_IMPORT_BYTES", "2048")

	cfg, err := infra.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	opts, cut, err := cliOptions(cfg, cfg.DefaultCurrency, cfg.CutPercent.String())
	if err != nil {
		t.Fatalf("cliOptions returned error: %v", err)
	}
	if opts.DefaultCurrency != "EUR" || !cut.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("cliOptions() = %q, %s; want EUR, 12.5", opts.DefaultCurrency, cut)
	}
	if opts.MaxBytes != 2048 || opts.Location.String() != "UTC" {
		t.Fatalf("cliOptions() = %+v", opts)
	}

	if _, _, err := cliOptions(cfg, "dollars", "10"); err == nil {
		t.Fatal("expected error for invalid -currency")
	}
	if _, _, err := cliOptions(cfg, "USD", "150"); err == nil {
		t.Fatal("expected error for -cut above 100")
	}
}

func TestLoadConfigRejectsInvalidEnvForCLI(t *testing.T) {
	t.Setenv("PLATFORM_CUT_PERCENT", "-3")
	if _, err := infra.LoadConfig(); err == nil {
		t.Fatal("expected LoadConfig to reject a negative cut")
	}
}
