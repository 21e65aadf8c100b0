package diagnostics

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

// Codes used across the server and probe.
const (
	CodeSetNotFound     = "SEGMENT.SET_NOT_FOUND"
	CodeSegmentNotFound = "SEGMENT.NOT_FOUND"
	CodeBadRequest      = "REQUEST.BAD"
	CodeProbeStep       = "PROBE.STEP"
	CodeProbeDone       = "PROBE.DONE"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// NotFound builds the record returned for an unknown set or segment.
func NotFound(set, segment string, known []string, err error) Diagnostic {
	d := Diagnostic{
		Severity: Err,
		Code:     CodeSetNotFound,
		Summary:  "Unknown segment set",
		Detail:   err.Error(),
		Evidence: map[string]any{"set": set},
	}
	if segment != "" {
		d.Code = CodeSegmentNotFound
		d.Summary = "Unknown segment"
		d.Evidence["segment"] = segment
	}
	if len(known) > 0 {
		d.SuggestedFixes = []string{"use one of the known names"}
		d.Evidence["known"] = known
	}
	return d
}
