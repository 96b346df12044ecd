package scoring

import (
	"fmt"
	"math"

	"phase-planner/src/model"
)

// IntegrationWeights weight external systems by integration effort
var IntegrationWeights = map[model.IntegrationType]float64{
	model.IntegrationDatabase:     1.0,
	model.IntegrationRESTAPI:      1.0,
	model.IntegrationGraphQL:      1.5,
	model.IntegrationQueue:        2.0,
	model.IntegrationWebSocket:    1.5,
	model.IntegrationFileStorage:  0.5,
	model.IntegrationMessaging:    0.5,
	model.IntegrationAuthProvider: 1.0,
}

var integrationOrder = []model.IntegrationType{
	model.IntegrationDatabase,
	model.IntegrationRESTAPI,
	model.IntegrationGraphQL,
	model.IntegrationQueue,
	model.IntegrationWebSocket,
	model.IntegrationFileStorage,
	model.IntegrationMessaging,
	model.IntegrationAuthProvider,
}

// IntegrationScorer scores the number and kind of external systems.
//
// Auth providers count twice: once as an integration of type auth_provider
// and again through AuthTypeCount. The double weighting is intentional and
// kept as-is.
type IntegrationScorer struct{}

// Dimension returns the integration dimension
func (IntegrationScorer) Dimension() model.Dimension {
	return model.DimensionIntegration
}

// Score computes min(1, I/8*0.7 + authTypes/3*0.3) with I the weighted integration count
func (IntegrationScorer) Score(m model.MetricsInput) model.DimensionScore {
	i := WeightedIntegrationCount(m.Integrations)
	v := math.Min(1, (i/8)*0.7+(float64(m.AuthTypeCount)/3)*0.3)

	return model.DimensionScore{
		Value:  clamp01(v),
		Detail: fmt.Sprintf("weighted integrations %.2f, %d auth types", i, m.AuthTypeCount),
	}
}

// WeightedIntegrationCount sums integration counts by type weight
func WeightedIntegrationCount(integrations map[model.IntegrationType]int) float64 {
	var total float64
	for _, t := range integrationOrder {
		total += float64(integrations[t]) * IntegrationWeights[t]
	}
	return total
}
