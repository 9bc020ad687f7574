package compliance

// Severity ranks a compliance check result.
type Severity string

// Severity values. INFO items are reminders and do not affect the score.
const (
	SeverityPass    Severity = "PASS"
	SeverityWarning Severity = "WARNING"
	SeverityFail    Severity = "FAIL"
	SeverityInfo    Severity = "INFO"
)

// CheckResult is a single compliance check outcome.
type CheckResult struct {
	Severity       Severity `json:"severity"`
	Rule           string   `json:"rule"`
	Room           string   `json:"room"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Report is a full compliance report for an estimate.
type Report struct {
	TotalChecks int           `json:"total_checks"`
	Passes      int           `json:"passes"`
	Warnings    int           `json:"warnings"`
	Failures    int           `json:"failures"`
	Results     []CheckResult `json:"results"`
	ScorePct    float64       `json:"score_pct"`
}

// SanityWarning flags a device count that is implausible for residential
// work. These catch detector mistakes rather than code violations.
type SanityWarning struct {
	Rule       string `json:"rule"`
	Message    string `json:"message"`
	Severity   string `json:"severity"` // "error", "warning", "info"
	SymbolType string `json:"symbol_type,omitempty"`
}
