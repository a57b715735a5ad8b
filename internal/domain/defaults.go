package domain

// DefaultCognitiveProfile returns the conservative constants used to fill
// the cognitive block when a tier does not compute one.
func DefaultCognitiveProfile() CognitiveProfile {
	return CognitiveProfile{
		Communication:      65,
		Leadership:         60,
		ProblemSolving:     70,
		Teamwork:           75,
		Creativity:         65,
		Adaptability:       70,
		LearningAgility:    65,
		AnalyticalThinking: 70,
		OverallScore:       68,
	}
}

// DefaultCareerTrajectory returns the conservative trajectory block used
// when a tier does not compute one.
func DefaultCareerTrajectory() CareerTrajectory {
	return CareerTrajectory{
		CareerPath:        "mid_career",
		ProgressionRate:   65,
		Stability:         70,
		PotentialFit:      75,
		GrowthPotential:   "Good potential to grow within this role",
		TrajectorySummary: "Career path consistent with the target position.",
	}
}
