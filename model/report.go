package model

// Rejection records a single raster region or table screenshot that did not
// make it into the final document, and why. Reason is a human-readable
// audit trail, not a control signal; classifier-driven rejections and
// decode/render failures are distinguished by message content only.
type Rejection struct {
	// Page is the 1-based page number where the item occurred
	Page int

	// Index is the item's 0-based position within the page
	Index int

	// Reason is the classifier's verdict reason or a failure description
	Reason string
}

// Report is the diagnostic summary of an extraction run: accepted counts
// plus an ordered record of every rejected image and table screenshot.
type Report struct {
	FiguresAccepted int
	TablesAccepted  int
	RejectedImages  []Rejection
	RejectedTables  []Rejection
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// AddRejectedImage records a rejected raster region
func (r *Report) AddRejectedImage(page, index int, reason string) {
	r.RejectedImages = append(r.RejectedImages, Rejection{Page: page, Index: index, Reason: reason})
}

// AddRejectedTable records a rejected table screenshot
func (r *Report) AddRejectedTable(page, index int, reason string) {
	r.RejectedTables = append(r.RejectedTables, Rejection{Page: page, Index: index, Reason: reason})
}

// TotalRejected returns the combined count of rejected images and tables
func (r *Report) TotalRejected() int {
	if r == nil {
		return 0
	}
	return len(r.RejectedImages) + len(r.RejectedTables)
}

// TotalAccepted returns the combined count of accepted figures and tables
func (r *Report) TotalAccepted() int {
	if r == nil {
		return 0
	}
	return r.FiguresAccepted + r.TablesAccepted
}
