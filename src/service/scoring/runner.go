package scoring

import "phase-planner/src/model"

// Runner validates metrics and runs every registered scorer in order
type Runner struct {
	scorers []Scorer
}

// NewRunner creates a runner with one scorer per dimension
func NewRunner() *Runner {
	return &Runner{scorers: DefaultScorers()}
}

// ScoreAll validates the input and computes every dimension score.
// Invalid input returns *model.InvalidMetricsError and no scores.
func (r *Runner) ScoreAll(m model.MetricsInput) (map[model.Dimension]model.DimensionScore, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	scores := make(map[model.Dimension]model.DimensionScore, len(r.scorers))
	for _, s := range r.scorers {
		scores[s.Dimension()] = s.Score(m)
	}
	return scores, nil
}

// Compute scores the input and assembles a complexity report
func (r *Runner) Compute(m model.MetricsInput) (model.ComplexityReport, error) {
	scores, err := r.ScoreAll(m)
	if err != nil {
		return model.ComplexityReport{}, err
	}

	overall := Composite(scores)
	return model.ComplexityReport{
		OverallScore: overall,
		Category:     Classify(overall),
		Dimensions:   scores,
		Confidence:   Confidence(scores),
	}, nil
}

// GetScorer returns the scorer for a dimension, or nil
func (r *Runner) GetScorer(d model.Dimension) Scorer {
	for _, s := range r.scorers {
		if s.Dimension() == d {
			return s
		}
	}
	return nil
}

// ListDimensions returns the dimensions of all registered scorers
func (r *Runner) ListDimensions() []model.Dimension {
	dims := make([]model.Dimension, len(r.scorers))
	for i, s := range r.scorers {
		dims[i] = s.Dimension()
	}
	return dims
}
