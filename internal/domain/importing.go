package domain

// ImportFormat tags the source format of a bulk import.
type ImportFormat string

const (
	FormatCSV  ImportFormat = "csv"
	FormatText ImportFormat = "text"
)

// ImportResult is the outcome of a bulk import. Records and Errors both keep
// input order; a failed line never aborts the rest of the batch.
type ImportResult struct {
	Format  ImportFormat
	Records []Donation
	Errors  []string
}

// Failed reports whether the import produced no records and at least one error.
func (r ImportResult) Failed() bool {
	return len(r.Records) == 0 && len(r.Errors) > 0
}
