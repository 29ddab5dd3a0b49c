package behavioral

// ExportSteps supplies the variable steps of the export skeleton.
type ExportSteps interface {
	Fetch() []string
	Transform(record string) string
}

// Export is the template method: the fetch → transform → collect order
// is fixed here; only the steps vary.
func Export(steps ExportSteps) []string {
	records := steps.Fetch()
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, steps.Transform(r))
	}

	return out
}

// CSVExport implements the steps for a fixed in-memory dataset.
type CSVExport struct {
	Records []string
}

// Fetch returns the dataset as-is.
func (c CSVExport) Fetch() []string { return c.Records }

// Transform quotes one record for CSV output.
func (c CSVExport) Transform(record string) string { return `"` + record + `"` }
