package types

// ------------------------------
// Response Types
// ------------------------------

// AnalysisResult is the decoded body of POST /analyze. Scores keys are the
// service's category names (bullish, bearish, neutral, confusion); unknown
// categories are preserved as-is.
type AnalysisResult struct {
	Label         Label              `json:"label"`
	Confidence    float64            `json:"confidence"`
	Outlook       float64            `json:"outlook"`
	Scores        map[string]float64 `json:"scores"`
	WordCount     int                `json:"word_count"`
	MatchedCount  int                `json:"matched_count"`
	NegationCount int                `json:"negation_count"`
}

// IsBullish reports whether the classification leans bullish.
func (r AnalysisResult) IsBullish() bool {
	return r.Label == LabelBullish || r.Label == LabelVeryBullish
}

// IsBearish reports whether the classification leans bearish.
func (r AnalysisResult) IsBearish() bool {
	return r.Label == LabelBearish || r.Label == LabelVeryBearish
}

// IsNeutral reports whether the classification is neutral.
func (r AnalysisResult) IsNeutral() bool { return r.Label == LabelNeutral }

// Classification is the nested label block inside compare and batch payloads.
type Classification struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// EraAnalysis is the per-era payload inside a CompareResult. Scores includes
// the era's outlook alongside the category scores.
type EraAnalysis struct {
	Classification Classification     `json:"classification"`
	Scores         map[string]float64 `json:"scores"`
}

// Drift summarizes how sentiment moved between the compared eras.
// MinEra and PeakEra are always members of the requested era set.
type Drift struct {
	Direction DriftDirection `json:"direction"`
	Magnitude float64        `json:"magnitude"`
	MinEra    Era            `json:"min_era"`
	PeakEra   Era            `json:"peak_era"`
}

// CompareResult is the decoded body of POST /analyze/compare-eras, one
// Results entry per requested era.
type CompareResult struct {
	Results map[Era]EraAnalysis `json:"results"`
	Drift   Drift               `json:"drift"`
	Meta    map[string]any      `json:"meta,omitempty"`
}

// Era returns the analysis for a single era, if present.
func (r *CompareResult) Era(era Era) (EraAnalysis, bool) {
	a, ok := r.Results[era]
	return a, ok
}

// BatchEntry is the per-text payload inside a BatchResult. A failed item
// carries Error and no classification.
type BatchEntry struct {
	Classification Classification     `json:"classification"`
	Scores         map[string]float64 `json:"scores"`
	Error          string             `json:"error,omitempty"`
}

// Failed reports whether this item failed processing.
func (e BatchEntry) Failed() bool { return e.Error != "" }

// BatchMeta carries processing metadata for a batch call.
// TextsProcessed + TextsFailed equals the number of submitted texts.
type BatchMeta struct {
	Era              Era   `json:"era"`
	TextsProcessed   int   `json:"texts_processed"`
	TextsFailed      int   `json:"texts_failed"`
	ProcessingTimeMS int64 `json:"processing_time_ms"`
}

// BatchResult is the decoded body of POST /analyze/batch, keyed by the
// caller-supplied ids.
type BatchResult struct {
	Results map[string]BatchEntry `json:"results"`
	Meta    BatchMeta             `json:"meta"`
}

// Len returns the number of per-item results.
func (r *BatchResult) Len() int { return len(r.Results) }

// Successful returns only the items that processed cleanly.
func (r *BatchResult) Successful() map[string]BatchEntry {
	out := make(map[string]BatchEntry, len(r.Results))
	for id, e := range r.Results {
		if !e.Failed() {
			out[id] = e
		}
	}
	return out
}

// Failed returns only the items that failed processing.
func (r *BatchResult) Failed() map[string]BatchEntry {
	out := make(map[string]BatchEntry)
	for id, e := range r.Results {
		if e.Failed() {
			out[id] = e
		}
	}
	return out
}
