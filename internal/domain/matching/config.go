package matching

// Config carries the scoring weights so they can be tuned without code
// changes. All contributions are independent; the final score is clamped at
// zero and has no upper bound.
type Config struct {
	MajorKeywordBonus     float64 `mapstructure:"major_keyword_bonus"`
	SkillOverlapWeight    float64 `mapstructure:"skill_overlap_weight"`
	InterestOverlapWeight float64 `mapstructure:"interest_overlap_weight"`
	EducationBonus        float64 `mapstructure:"education_bonus"`
	EducationPenalty      float64 `mapstructure:"education_penalty"`
	LocationBonus         float64 `mapstructure:"location_bonus"`
	JobTypeBonus          float64 `mapstructure:"job_type_bonus"`
	MaxReasons            int     `mapstructure:"max_reasons"`
}

func DefaultConfig() Config {
	return Config{
		MajorKeywordBonus:     10,
		SkillOverlapWeight:    20,
		InterestOverlapWeight: 15,
		EducationBonus:        15,
		EducationPenalty:      10,
		LocationBonus:         10,
		JobTypeBonus:          10,
		MaxReasons:            2,
	}
}
