package types

// ------------------------------
// Request Types
// ------------------------------

// AnalyzeRequest holds parameters for single-text analysis.
// Era is optional; when empty the service applies its default era.
type AnalyzeRequest struct {
	Text string `json:"text"`
	Era  Era    `json:"era,omitempty"`
}

// CompareErasRequest holds parameters for cross-era comparison.
// An empty Eras slice asks the service to compare all eras.
type CompareErasRequest struct {
	Text string `json:"text"`
	Eras []Era  `json:"eras,omitempty"`
}

// BatchText pairs a caller-supplied correlation id with the text to analyze.
// Ids key the per-item results and must be unique within one request.
type BatchText struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BatchRequest holds parameters for multi-text analysis.
// Era is optional; when empty the service applies its default era.
type BatchRequest struct {
	Texts []BatchText `json:"texts"`
	Era   Era         `json:"era,omitempty"`
}
