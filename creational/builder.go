package creational

// Report is the immutable product assembled by ReportBuilder.
// Once built, a Report carries no reference back to its builder.
type Report struct {
	Title  string
	Rows   []string
	Footer string
}

// ReportBuilder assembles a Report in stages. The zero value is ready to
// use; stages may be called in any order and chained fluently.
type ReportBuilder struct {
	title  string
	rows   []string
	footer string
}

// NewReportBuilder returns an empty builder.
func NewReportBuilder() *ReportBuilder { return &ReportBuilder{} }

// SetTitle records the report title.
func (b *ReportBuilder) SetTitle(title string) *ReportBuilder {
	b.title = title
	return b
}

// AddRow appends one body row, preserving insertion order.
func (b *ReportBuilder) AddRow(row string) *ReportBuilder {
	b.rows = append(b.rows, row)
	return b
}

// SetFooter records the report footer.
func (b *ReportBuilder) SetFooter(footer string) *ReportBuilder {
	b.footer = footer
	return b
}

// Build validates the staged state and returns the finished Report.
// Returns ErrEmptyTitle if SetTitle was never called.
// The returned Report owns a copy of the rows, so the builder may be
// reused or mutated afterwards without aliasing.
func (b *ReportBuilder) Build() (Report, error) {
	if b.title == "" {
		return Report{}, ErrEmptyTitle
	}
	rows := make([]string, len(b.rows))
	copy(rows, b.rows)

	return Report{Title: b.title, Rows: rows, Footer: b.footer}, nil
}
