package dto

// ImportIssuePayload describes one skipped row of an import file.
type ImportIssuePayload struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResponse represents the result of a bulk CSV import.
type ImportResponse struct {
	Imported int                   `json:"imported"`
	Skipped  []*ImportIssuePayload `json:"skipped"`
}
