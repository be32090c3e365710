package mastery

// Params defines the configurable thresholds for mastery classification.
type Params struct {
	// MinExposures is the minimum number of reviews (correct + wrong) a
	// word needs before it can count as mastered. This prevents a single
	// lucky guess from marking a word as learned.
	MinExposures int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance.
type ParamsConfig struct {
	MinExposures int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinExposures: 3,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinExposures > 0 {
		params.MinExposures = config.MinExposures
	}

	return params
}
