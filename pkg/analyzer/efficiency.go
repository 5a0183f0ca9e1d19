package analyzer

import "github.com/opscart/warehouse-efficiency-analyzer/pkg/models"

// Fixed business thresholds
const (
	IdleCPUThreshold               = 10.0 // CPU % below which a minute counts as idle
	OverProvisionedMemoryThreshold = 30.0 // memory % below which a minute counts as over-provisioned

	IdleMinutesLimit            = 60
	OverProvisionedMinutesLimit = 60
	AutoScalingEventLimit       = 20
)

// RecommendationRule appends Message to a summary when Applies holds
type RecommendationRule struct {
	Type    models.RecommendationType
	Message string
	Applies func(s *models.Summary) bool
}

// Rules are evaluated in slice order; recommendations keep that order.
var recommendationRules = []RecommendationRule{
	{
		Type:    models.RecommendationReduceActiveHours,
		Message: "Consider reducing active hours or consolidating workloads to minimize idle time.",
		Applies: func(s *models.Summary) bool { return s.IdleMinutes > IdleMinutesLimit },
	},
	{
		Type:    models.RecommendationRightSizeMemory,
		Message: "Review memory allocation and consider right-sizing resources.",
		Applies: func(s *models.Summary) bool { return s.OverProvisionedMinutes > OverProvisionedMinutesLimit },
	},
	{
		Type:    models.RecommendationTuneAutoScaling,
		Message: "Optimize auto-scaling policies to reduce unnecessary scaling events.",
		Applies: func(s *models.Summary) bool { return s.AutoScalingEventCount > AutoScalingEventLimit },
	},
}

// Rules returns a copy of the recommendation rules in evaluation order
func Rules() []RecommendationRule {
	rules := make([]RecommendationRule, len(recommendationRules))
	copy(rules, recommendationRules)
	return rules
}

// AnalyzeEfficiency counts idle and over-provisioned minutes and
// auto-scaling events, then applies the recommendation rules
func AnalyzeEfficiency(table []models.Observation) *models.Summary {
	summary := &models.Summary{
		Recommendations: make([]string, 0, len(recommendationRules)),
	}

	for _, obs := range table {
		if obs.CPUUsage < IdleCPUThreshold {
			summary.IdleMinutes++
		}
		if obs.MemoryUsage < OverProvisionedMemoryThreshold {
			summary.OverProvisionedMinutes++
		}
		summary.AutoScalingEventCount += obs.AutoScalingEvent
	}

	for _, rule := range recommendationRules {
		if rule.Applies(summary) {
			summary.Recommendations = append(summary.Recommendations, rule.Message)
		}
	}

	return summary
}
