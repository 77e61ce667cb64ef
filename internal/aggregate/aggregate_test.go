package aggregate

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func donation(name, amount string, ts time.Time) domain.Donation {
	return domain.Donation{ID: name + amount, Contributor: name, Amount: dec(amount), Currency: "USD", Timestamp: ts}
}

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTotalAfterCut(t *testing.T) {
	tests := []struct {
		amount string
		cut    string
		want   string
	}{
		{amount: "100", cut: "30", want: "70"},
		{amount: "10.55", cut: "0", want: "10.55"},
		{amount: "42", cut: "100", want: "0"},
		{amount: "3", cut: "12.5", want: "2.625"},
	}
	for _, tc := range tests {
		got := TotalAfterCut([]domain.Donation{donation("a", tc.amount, base)}, dec(tc.cut))
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("TotalAfterCut(%s, %s) = %s, want %s", tc.amount, tc.cut, got, tc.want)
		}
	}
	if got := TotalAfterCut(nil, dec("30")); !got.IsZero() {
		t.Fatalf("TotalAfterCut(nil) = %s, want 0", got)
	}
}

func TestProgressPercent(t *testing.T) {
	target := dec("200")
	prev := -1.0
	for _, current := range []string{"0", "1", "50", "199.99", "200", "500"} {
		got := ProgressPercent(dec(current), target)
		if got < 0 || got > 100 {
			t.Fatalf("ProgressPercent(%s) = %v out of range", current, got)
		}
		if got < prev {
			t.Fatalf("ProgressPercent not monotonic at %s: %v < %v", current, got, prev)
		}
		prev = got
	}
	if got := ProgressPercent(dec("50"), target); got != 25 {
		t.Fatalf("ProgressPercent(50, 200) = %v, want 25", got)
	}
	if got := ProgressPercent(dec("500"), target); got != 100 {
		t.Fatalf("over-funded progress = %v, want 100", got)
	}
	if got := ProgressPercent(dec("75"), decimal.Zero); got != 0 {
		t.Fatalf("zero target progress = %v, want 0", got)
	}
}

func TestContributors(t *testing.T) {
	records := []domain.Donation{
		donation("A", "10", base),
		donation("B", "5", base.Add(time.Minute)),
		donation("A", "20", base.Add(2*time.Minute)),
	}
	got := Contributors(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 contributors, got %d", len(got))
	}
	a, b := got[0], got[1]
	if a.Name != "A" || !a.TotalAmount.Equal(dec("30")) || a.DonationCount != 2 || !a.AverageAmount.Equal(dec("15")) {
		t.Fatalf("unexpected first rollup: %+v", a)
	}
	if !a.LastDonation.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("last donation = %v", a.LastDonation)
	}
	if b.Name != "B" || !b.TotalAmount.Equal(dec("5")) || b.DonationCount != 1 || !b.AverageAmount.Equal(dec("5")) {
		t.Fatalf("unexpected second rollup: %+v", b)
	}
}

func TestContributorsTiesKeepFirstAppearance(t *testing.T) {
	records := []domain.Donation{
		donation("zed", "5", base),
		donation("amy", "5", base),
		donation("Amy", "9", base),
		donation("bo", "5", base),
	}
	got := Contributors(records)
	names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
	want := []string{"Amy", "zed", "amy", "bo"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
	if top := TopContributors(records, 2); len(top) != 2 || top[0].Name != "Amy" {
		t.Fatalf("TopContributors = %+v", top)
	}
}

func TestHourlyHistogram(t *testing.T) {
	records := []domain.Donation{
		donation("A", "10", time.Date(2024, 6, 1, 21, 5, 0, 0, time.UTC)),
		donation("B", "4", time.Date(2024, 6, 3, 21, 55, 0, 0, time.UTC)),
		donation("C", "1", time.Date(2024, 6, 2, 3, 0, 0, 0, time.UTC)),
	}
	got := HourlyHistogram(records, time.UTC)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %+v", got)
	}
	if got[0].Hour != 3 || got[0].Label != "3:00" || got[0].Count != 1 {
		t.Fatalf("unexpected first bucket %+v", got[0])
	}
	if got[1].Hour != 21 || got[1].Label != "21:00" || got[1].Count != 2 || !got[1].Amount.Equal(dec("14")) {
		t.Fatalf("unexpected merged bucket %+v", got[1])
	}
}

func TestHourlyHistogramUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	got := HourlyHistogram([]domain.Donation{donation("A", "1", time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC))}, loc)
	if len(got) != 1 || got[0].Hour != 1 {
		t.Fatalf("expected local hour 1, got %+v", got)
	}
}

func TestEstimateTimeRemaining(t *testing.T) {
	start := base
	tests := []struct {
		name    string
		current string
		target  string
		elapsed time.Duration
		want    string
	}{
		{name: "nothing raised", current: "0", target: "100", elapsed: time.Hour, want: "Unknown"},
		{name: "goal reached", current: "100", target: "100", elapsed: time.Hour, want: "Goal reached!"},
		{name: "days and hours", current: "10", target: "100", elapsed: 8 * time.Hour, want: "~3d 0h remaining"},
		{name: "hours only", current: "50", target: "100", elapsed: 5 * time.Hour, want: "~5h remaining"},
		{name: "under an hour", current: "90", target: "100", elapsed: 3 * time.Hour, want: "< 1h remaining"},
		{name: "no elapsed time", current: "10", target: "100", elapsed: 0, want: "Unknown"},
		{name: "very slow run rate", current: "0.35", target: "1000000", elapsed: time.Hour, want: "~119047d 13h remaining"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateTimeRemaining(dec(tc.current), dec(tc.target), start, start.Add(tc.elapsed))
			if got.String() != tc.want {
				t.Fatalf("EstimateTimeRemaining() = %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestEstimateTimeRemainingSaturates(t *testing.T) {
	got := EstimateTimeRemaining(dec("0.35"), dec("1000000"), base, base.Add(time.Hour))
	if got.State != EstimateProjected {
		t.Fatalf("EstimateTimeRemaining() state = %q, want %q", got.State, EstimateProjected)
	}
	if got.Remaining != time.Duration(math.MaxInt64) {
		t.Fatalf("EstimateTimeRemaining() remaining = %v, want saturated duration", got.Remaining)
	}
	if got.Days != 119047 || got.Hours != 13 {
		t.Fatalf("EstimateTimeRemaining() = %dd %dh, want 119047d 13h", got.Days, got.Hours)
	}

	small := EstimateTimeRemaining(dec("10"), dec("100"), base, base.Add(8*time.Hour))
	if small.Remaining != 72*time.Hour {
		t.Fatalf("EstimateTimeRemaining() remaining = %v, want 72h", small.Remaining)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		span time.Duration
		want string
	}{
		{span: 0, want: "0m"},
		{span: 42 * time.Minute, want: "42m"},
		{span: 3*time.Hour + 5*time.Minute, want: "3h 5m"},
		{span: 2*day + 4*time.Minute, want: "2d 0h 4m"},
		{span: -time.Hour, want: "0m"},
	}
	for _, tc := range tests {
		if got := FormatDuration(base, base.Add(tc.span)); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.span, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	now := base
	records := []domain.Donation{
		donation("A", "10", now.Add(-2*time.Hour)),
		donation("B", "40", now.Add(-30*time.Minute)),
		donation("A", "10", now.Add(-time.Minute)),
	}
	s := Summarize(records, dec("30"), now)
	if s.Count != 3 || s.ContributorCount != 2 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if !s.TotalBeforeCut.Equal(dec("60")) || !s.TotalAfterCut.Equal(dec("42")) {
		t.Fatalf("unexpected totals %s / %s", s.TotalBeforeCut, s.TotalAfterCut)
	}
	if !s.Largest.Equal(dec("40")) || !s.Average.Equal(dec("20")) {
		t.Fatalf("unexpected largest/average %s / %s", s.Largest, s.Average)
	}
	if s.LastHourCount != 2 || !s.LastHourAmount.Equal(dec("50")) {
		t.Fatalf("unexpected last hour %d / %s", s.LastHourCount, s.LastHourAmount)
	}

	recent := Recent(records, 2)
	if len(recent) != 2 || recent[0].Amount.String() != "10" || !recent[0].Timestamp.Equal(now.Add(-time.Minute)) {
		t.Fatalf("unexpected recent %+v", recent)
	}
	if records[0].Timestamp != now.Add(-2*time.Hour) {
		t.Fatal("Recent must not reorder its input")
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	campaign := domain.Campaign{ID: "c", Title: "Goal", TargetAmount: dec("100"), Currency: "USD", StartDate: base.Add(-10 * time.Hour)}
	records := []domain.Donation{
		donation("A", "10", base.Add(-3*time.Hour)),
		donation("B", "15.5", base.Add(-20*time.Minute)),
	}
	settings := Settings{CutPercent: dec("30"), Location: time.UTC}

	first := Build(campaign, records, settings, base)
	second := Build(campaign, records, settings, base)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Build is not idempotent:\n%+v\n%+v", first, second)
	}
	if !first.Campaign.CurrentAmount.Equal(dec("17.85")) {
		t.Fatalf("current amount = %s, want 17.85", first.Campaign.CurrentAmount)
	}
	if first.Duration != "10h 0m" {
		t.Fatalf("duration = %q", first.Duration)
	}
}
