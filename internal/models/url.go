package models

// URLVerdict is the safety verdict for an analyzed URL
type URLVerdict string

const (
	URLVerdictSafe      URLVerdict = "Safe"
	URLVerdictCaution   URLVerdict = "Caution"
	URLVerdictDangerous URLVerdict = "Dangerous"
	URLVerdictUnknown   URLVerdict = "Unknown"
)

// GroundingSource is a web source that grounded a URL safety assessment
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// URLAnalysisResult is the gateway's safety assessment of a URL
type URLAnalysisResult struct {
	Verdict      URLVerdict        `json:"verdict"`
	Summary      string            `json:"summary"`
	ThreatsFound []string          `json:"threats_found"`
	Sources      []GroundingSource `json:"sources"`
}
