package score

// Weights is the fixed linear combination applied to sub-scores plus the
// base values each heuristic starts from. Every sub-score follows a
// base-plus-adjustment shape; the composite weights sum to 1.0.
type Weights struct {
	Skill        float64
	Presentation float64
	Coherence    float64
	Sector       float64
	Semantic     float64
	Experience   float64

	// ATSKeywordBonus is added per matched ATS keyword, capped at ATSBonusCap.
	ATSKeywordBonus float64
	ATSBonusCap     float64

	SkillBase        int
	SkillFloor       int
	SkillCeil        int
	SemanticBase     int
	ExperienceBase   int
	EducationBase    int
	PresentationBase int
	CoherenceBase    int
	SectorBase       int
}

// DefaultWeights returns the documented calibration: skill 40%, presentation
// 10%, coherence 15%, sector 15%, semantic 10%, experience 10%.
func DefaultWeights() Weights {
	return Weights{
		Skill:        0.40,
		Presentation: 0.10,
		Coherence:    0.15,
		Sector:       0.15,
		Semantic:     0.10,
		Experience:   0.10,

		ATSKeywordBonus: 0.5,
		ATSBonusCap:     5,

		SkillBase:        55,
		SkillFloor:       35,
		SkillCeil:        95,
		SemanticBase:     60,
		ExperienceBase:   50,
		EducationBase:    50,
		PresentationBase: 75,
		CoherenceBase:    70,
		SectorBase:       65,
	}
}
