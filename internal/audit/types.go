package audit

// Category classifies an issue. Closed enum; the model is instructed to use
// exactly these values.
type Category string

const (
	CategorySecurity    Category = "security"
	CategoryBug         Category = "bug"
	CategoryQuality     Category = "quality"
	CategoryPerformance Category = "performance"
)

// Severity rates an issue. Closed enum, uppercase on the wire.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Issue is the model's output unit. Produced only by the remote model;
// cerascan does not validate issue correctness.
type Issue struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Type     Category `json:"type"`
	Msg      string   `json:"msg"`
	Severity Severity `json:"severity"`
}

// Envelope is the single top-level JSON object emitted per run: either an
// issues list or an error message, never both.
type Envelope struct {
	Issues []Issue `json:"issues,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Request is the immutable input for one analysis run.
type Request struct {
	RepoURL string
	Branch  string
	Prefix  string
}
