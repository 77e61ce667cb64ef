package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/domain"
	"goaltracker/internal/importer"
	"goaltracker/internal/infra"
	"goaltracker/internal/money"
	"goaltracker/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}

	var (
		fileFlag     string
		currencyFlag string
		targetFlag   string
		cutFlag      string
		topFlag      int
		outFlag      string
	)

	flag.StringVar(&fileFlag, "file", "", "CSV or TXT file to import")
	flag.StringVar(&currencyFlag, "currency", cfg.DefaultCurrency, "currency for lines without one")
	flag.StringVar(&targetFlag, "target", "", "optional goal amount to report progress against")
	flag.StringVar(&cutFlag, "cut", cfg.CutPercent.String(), "platform cut percent (0-100)")
	flag.IntVar(&topFlag, "top", 10, "number of contributors to list (0 lists everyone)")
	flag.StringVar(&outFlag, "out", "", "directory to write donations.csv and contributors.csv into")
	flag.Parse()

	path := strings.TrimSpace(fileFlag)
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		exitWithError(errors.New("-file is required"))
	}

	opts, cut, err := cliOptions(cfg, currencyFlag, cutFlag)
	if err != nil {
		exitWithError(err)
	}
	var target decimal.Decimal
	if targetFlag != "" {
		if target, err = decimal.NewFromString(targetFlag); err != nil || !target.IsPositive() {
			exitWithError(fmt.Errorf("invalid -target %q", targetFlag))
		}
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "goalimport").Logger()

	f, err := os.Open(path)
	if err != nil {
		exitWithError(fmt.Errorf("failed to open %s: %w", path, err))
	}
	defer f.Close()

	result := importer.Import(path, f, opts)
	for _, msg := range result.Errors {
		fmt.Fprintln(os.Stderr, msg)
	}
	if result.Failed() {
		exitWithError(fmt.Errorf("no donations imported from %s", path))
	}

	report(os.Stdout, result.Records, opts.DefaultCurrency, cut, target, topFlag)

	if outFlag != "" {
		if err := export(outFlag, result.Records, opts.DefaultCurrency); err != nil {
			exitWithError(err)
		}
		logger.Info().Str("dir", outFlag).Int("donations", len(result.Records)).Msg("export written")
	}
}

func report(w io.Writer, records []domain.Donation, currency string, cut, target decimal.Decimal, top int) {
	total := aggregate.TotalBeforeCut(records)
	after := aggregate.AfterCut(total, cut)
	fmt.Fprintf(w, "Imported %d donations\n", len(records))
	fmt.Fprintf(w, "Total: %s (after %s%% cut: %s)\n",
		money.FormatCurrency(total, currency), cut.String(), money.FormatCurrency(after, currency))
	if target.IsPositive() {
		fmt.Fprintf(w, "Progress: %.1f%% of %s\n", aggregate.ProgressPercent(after, target), money.FormatCurrency(target, currency))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\n#\tCONTRIBUTOR\tTOTAL\tDONATIONS")
	for i, c := range aggregate.TopContributors(records, top) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, c.Name, money.FormatCurrency(c.TotalAmount, currency), c.DonationCount)
	}
	_ = tw.Flush()
}

func export(dir string, records []domain.Donation, currency string) error {
	out, err := storage.NewExportDir(dir)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := out.Create(ctx, "donations.csv", func(w io.Writer) error {
		return importer.ExportCSV(w, records)
	}); err != nil {
		return err
	}
	_, err = out.Create(ctx, "contributors.csv", func(w io.Writer) error {
		return importer.ContributorsCSV(w, aggregate.Contributors(records), currency)
	})
	return err
}

// cliOptions applies flag overrides on top of the shared config. Overrides go
// through the same validation LoadConfig applies to the environment.
func cliOptions(cfg *infra.Config, currencyFlag, cutFlag string) (importer.Options, decimal.Decimal, error) {
	currency, err := money.NormalizeCode(currencyFlag)
	if err != nil {
		return importer.Options{}, decimal.Decimal{}, err
	}
	cut, err := decimal.NewFromString(cutFlag)
	if err != nil || cut.IsNegative() || cut.GreaterThan(decimal.NewFromInt(100)) {
		return importer.Options{}, decimal.Decimal{}, fmt.Errorf("invalid -cut %q: must be between 0 and 100", cutFlag)
	}
	return importer.Options{
		DefaultCurrency: currency,
		MaxBytes:        cfg.MaxImportBytes,
		Location:        cfg.Location,
	}, cut, nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
