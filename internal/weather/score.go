package weather

// Recommendation is the qualitative verdict of a suitability score.
type Recommendation string

const (
	RecommendationExcellent Recommendation = "Excellent"
	RecommendationGood      Recommendation = "Good"
	RecommendationPoor      Recommendation = "Poor"
)

// Scoring thresholds. Each satisfied rule is worth pointsPerRule.
const (
	pointsPerRule = 25

	MinIdealTemperature = 5.0
	MaxIdealTemperature = 20.0
	MaxIdealHumidity    = 70
	MaxIdealWindSpeed   = 3.0
	MinIdealPressure    = 960.0

	excellentScore = 75
	goodScore      = 50
)

// Observation is the subset of a reading that drives the score.
type Observation struct {
	Temperature float64
	Humidity    int
	WindSpeed   float64
	Pressure    float64
}

// Suitability is the viewing score for one observation.
type Suitability struct {
	Score          int            `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
	Factors        []string       `json:"factors"`
}

type rule struct {
	pass func(Observation) bool
	good string
	bad  string
}

// Rules are evaluated in this order and factors are reported in this order.
var rules = []rule{
	{
		pass: func(o Observation) bool {
			return o.Temperature >= MinIdealTemperature && o.Temperature <= MaxIdealTemperature
		},
		good: "✓ Good temperature",
		bad:  "⚠ Temperature not ideal",
	},
	{
		pass: func(o Observation) bool { return o.Humidity < MaxIdealHumidity },
		good: "✓ Low humidity",
		bad:  "⚠ High humidity",
	},
	{
		pass: func(o Observation) bool { return o.WindSpeed < MaxIdealWindSpeed },
		good: "✓ Low wind",
		bad:  "⚠ High wind",
	},
	{
		pass: func(o Observation) bool { return o.Pressure > MinIdealPressure },
		good: "✓ Good pressure",
		bad:  "⚠ Low pressure",
	},
}

// Score rates how suitable o is for telescope viewing.
func Score(o Observation) Suitability {
	score := 0
	factors := make([]string, 0, len(rules))

	for _, r := range rules {
		if r.pass(o) {
			score += pointsPerRule
			factors = append(factors, r.good)
		} else {
			factors = append(factors, r.bad)
		}
	}

	return Suitability{
		Score:          score,
		Recommendation: RecommendationFor(score),
		Factors:        factors,
	}
}

// RecommendationFor maps a score to its verdict.
func RecommendationFor(score int) Recommendation {
	switch {
	case score >= excellentScore:
		return RecommendationExcellent
	case score >= goodScore:
		return RecommendationGood
	default:
		return RecommendationPoor
	}
}
