package models

// RecommendationType identifies the rule that produced a recommendation
type RecommendationType string

const (
	RecommendationReduceActiveHours RecommendationType = "REDUCE_ACTIVE_HOURS"
	RecommendationRightSizeMemory   RecommendationType = "RIGHT_SIZE_MEMORY"
	RecommendationTuneAutoScaling   RecommendationType = "TUNE_AUTO_SCALING"
)

// Summary represents the efficiency analysis of a telemetry table
type Summary struct {
	IdleMinutes            int `json:"idle_minutes"`
	OverProvisionedMinutes int `json:"over_provisioned_minutes"`
	AutoScalingEventCount  int `json:"auto_scaling_event_count"`

	// Ordered by rule evaluation: idle, over-provisioned, auto-scaling
	Recommendations []string `json:"recommendations"`
}

// HasRecommendations reports whether any threshold rule fired
func (s *Summary) HasRecommendations() bool {
	return len(s.Recommendations) > 0
}
