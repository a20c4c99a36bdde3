package predictor

// Config carries the tunables a Predictor uses to turn raw DTW distance
// into a ranked prediction list.
type Config struct {
	// PopularityWeight scales how much a candidate's log-frequency pulls
	// it up the ranking relative to its raw DTW distance.
	PopularityWeight float64
	// BandDivisor sets the Sakoe-Chiba band half-width as the shorter of
	// the two compared paths' lengths divided by this value, floored at 2.
	BandDivisor int
	// FirstCharStrict restricts candidates to words sharing the swipe's
	// first letter.
	FirstCharStrict bool
	// LastCharPenalty scales the Euclidean distance added to a
	// candidate's score when its last letter differs from the swipe's.
	LastCharPenalty float64
	// LengthSkewMax bounds the ratio between the longer and the shorter of
	// the input path and a candidate's path; a candidate beyond it is
	// excluded outright.
	LengthSkewMax float64
}

// DefaultConfig returns the tuning used when no override is supplied.
func DefaultConfig() *Config {
	return &Config{
		PopularityWeight: 0.15,
		BandDivisor:      4,
		FirstCharStrict:  true,
		LastCharPenalty:  2.0,
		LengthSkewMax:    3.0,
	}
}
