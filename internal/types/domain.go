package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Core Domain Values
// ------------------------------

// Era identifies a named calibration period for the sentiment lexicon.
// Financial slang drifts over time; the service scores the same text
// differently depending on which era's lexicon is applied.
type Era string

const (
	// EraPrimitive covers pre-2016 traditional financial vocabulary.
	EraPrimitive Era = "primitive"
	// EraRamp covers 2016-2019 fintech and early-crypto terminology.
	EraRamp Era = "ramp"
	// EraMeme covers 2019-2023 retail-revolution vernacular.
	EraMeme Era = "meme"
	// EraPresent is the current aggregate lexicon across all eras.
	EraPresent Era = "present"
)

func (e Era) String() string { return string(e) }

// AllEras returns every era the service recognizes, oldest lexicon first.
func AllEras() []Era {
	return []Era{EraPrimitive, EraRamp, EraMeme, EraPresent}
}

// ParseEra converts a string such as "meme" into an Era. Input is
// case-insensitive and surrounding whitespace is ignored.
func ParseEra(s string) (Era, error) {
	switch e := Era(strings.ToLower(strings.TrimSpace(s))); e {
	case EraPrimitive, EraRamp, EraMeme, EraPresent:
		return e, nil
	}
	return "", fmt.Errorf("unknown era %q (valid eras: primitive, ramp, meme, present)", s)
}

// Label is the five-level sentiment classification returned by the service.
type Label string

const (
	LabelVeryBullish Label = "very_bullish"
	LabelBullish     Label = "bullish"
	LabelNeutral     Label = "neutral"
	LabelBearish     Label = "bearish"
	LabelVeryBearish Label = "very_bearish"
)

func (l Label) String() string { return string(l) }

// Valid reports whether l is one of the five labels the service emits.
func (l Label) Valid() bool {
	switch l {
	case LabelVeryBullish, LabelBullish, LabelNeutral, LabelBearish, LabelVeryBearish:
		return true
	}
	return false
}

// DriftDirection describes how sentiment moved across the eras of a
// compare call.
type DriftDirection string

const (
	DriftPositive DriftDirection = "positive_shift"
	DriftNegative DriftDirection = "negative_shift"
	DriftStable   DriftDirection = "stable"
)
