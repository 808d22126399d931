package domain

// BiblePlan is an ephemeral generated reading-plan CSV, keyed by the
// requested day count.
type BiblePlan struct {
	Days     int    `json:"days"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
