package discourses

import "github.com/discourses/discourses-go/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	AnalyzeRequest     = types.AnalyzeRequest
	CompareErasRequest = types.CompareErasRequest
	BatchRequest       = types.BatchRequest
	BatchText          = types.BatchText

	// Domain values
	Era            = types.Era
	Label          = types.Label
	DriftDirection = types.DriftDirection

	// Results
	AnalysisResult = types.AnalysisResult
	Classification = types.Classification
	EraAnalysis    = types.EraAnalysis
	CompareResult  = types.CompareResult
	Drift          = types.Drift
	BatchEntry     = types.BatchEntry
	BatchMeta      = types.BatchMeta
	BatchResult    = types.BatchResult
)

// Eras, oldest lexicon first.
const (
	EraPrimitive = types.EraPrimitive
	EraRamp      = types.EraRamp
	EraMeme      = types.EraMeme
	EraPresent   = types.EraPresent
)

// Sentiment labels.
const (
	LabelVeryBullish = types.LabelVeryBullish
	LabelBullish     = types.LabelBullish
	LabelNeutral     = types.LabelNeutral
	LabelBearish     = types.LabelBearish
	LabelVeryBearish = types.LabelVeryBearish
)

// Drift directions.
const (
	DriftPositive = types.DriftPositive
	DriftNegative = types.DriftNegative
	DriftStable   = types.DriftStable
)

// ParseEra converts a string such as "meme" into an Era. Input is
// case-insensitive and surrounding whitespace is ignored.
func ParseEra(s string) (Era, error) { return types.ParseEra(s) }

// AllEras returns every era the service recognizes, oldest lexicon first.
func AllEras() []Era { return types.AllEras() }
