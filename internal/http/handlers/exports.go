package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/importer"
	"goaltracker/pkg/zip"
)

const exportDateLayout = "2006-01-02"

// ExportDonations streams the active campaign's donations as CSV.
func (a *App) ExportDonations(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := importer.ExportCSV(&buf, snap.Donations); err != nil {
		a.fail(w, r, err)
		return
	}
	a.attachment(w, "text/csv", fmt.Sprintf("donations-%s.csv", a.now().Format(exportDateLayout)), buf.Bytes())
}

func (a *App) ExportContributors(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := importer.ContributorsCSV(&buf, aggregate.Contributors(snap.Donations), snap.Campaign.Currency); err != nil {
		a.fail(w, r, err)
		return
	}
	a.attachment(w, "text/csv", fmt.Sprintf("contributors-%s.csv", a.now().Format(exportDateLayout)), buf.Bytes())
}

// ExportSample serves a template CSV showing the accepted columns.
func (a *App) ExportSample(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := importer.ExportCSV(&buf, importer.SampleRecords(a.now())); err != nil {
		a.fail(w, r, err)
		return
	}
	a.attachment(w, "text/csv", "sample-donations.csv", buf.Bytes())
}

// ExportArchive bundles donations, the leaderboard and all campaigns into a zip.
func (a *App) ExportArchive(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	now := a.now()

	var donations, contributors, campaigns bytes.Buffer
	if err := importer.ExportCSV(&donations, snap.Donations); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := importer.ContributorsCSV(&contributors, aggregate.Contributors(snap.Donations), snap.Campaign.Currency); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.Store.WriteSeed(&campaigns); err != nil {
		a.fail(w, r, err)
		return
	}

	data, err := zip.Archive([]zip.File{
		{Name: "donations.csv", Data: donations.Bytes(), Modified: now},
		{Name: "contributors.csv", Data: contributors.Bytes(), Modified: now},
		{Name: "campaigns.yaml", Data: campaigns.Bytes(), Modified: now},
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.attachment(w, "application/zip", fmt.Sprintf("goal-tracker-%s.zip", now.Format(exportDateLayout)), data)
}

func (a *App) attachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
