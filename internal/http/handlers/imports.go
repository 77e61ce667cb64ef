package handlers

import (
	"io"
	"mime"
	"net/http"
	"strings"

	"goaltracker/internal/domain"
	"goaltracker/internal/importer"
	"goaltracker/internal/money"
)

const multipartOverhead = 1 << 20

type importResponse struct {
	Format   domain.ImportFormat `json:"format"`
	Imported int                 `json:"imported"`
	Errors   []string            `json:"errors"`
	Campaign *campaignView       `json:"campaign,omitempty"`
}

// ImportsCreate bulk-imports donations into the active campaign. It accepts a
// multipart upload in the "file" field or a raw request body; for raw bodies
// the format comes from ?format= or the Content-Type.
func (a *App) ImportsCreate(w http.ResponseWriter, r *http.Request) {
	active, err := a.Store.ActiveCampaign()
	if err != nil {
		a.fail(w, r, err)
		return
	}

	opts := a.Import
	opts.DefaultCurrency = active.Currency
	if v := r.URL.Query().Get("currency"); v != "" {
		code, err := money.NormalizeCode(v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		opts.DefaultCurrency = code
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = importer.DefaultMaxBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	name, body, err := importSource(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	defer body.Close()

	result := importer.Import(name, body, opts)
	resp := importResponse{Format: result.Format, Errors: result.Errors}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if result.Failed() {
		a.json(w, http.StatusUnprocessableEntity, resp)
		return
	}

	added, err := a.Store.AppendDonations(result.Records)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp.Imported = added
	if c, err := a.Store.ActiveCampaign(); err == nil {
		view := newCampaignView(c)
		resp.Campaign = &view
	}
	a.Logger.Info().
		Str("format", string(result.Format)).
		Int("imported", added).
		Int("errors", len(result.Errors)).
		Msg("donations imported")
	a.json(w, http.StatusCreated, resp)
}

func importSource(r *http.Request) (string, io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		return header.Filename, file, nil
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" && mediaType == "text/csv" {
		format = "csv"
	}
	switch format {
	case "", "text", "txt":
		return "paste.txt", r.Body, nil
	case "csv":
		return "paste.csv", r.Body, nil
	default:
		return "paste." + format, r.Body, nil
	}
}
