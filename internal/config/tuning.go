package config

import (
	"fmt"

	"github.com/spf13/viper"

	"campus-match/internal/domain/behavior"
	"campus-match/internal/domain/feature"
	"campus-match/internal/domain/matching"
)

// Tuning holds every weight, threshold and word list the engine consumes.
// Defaults are compiled in; a YAML file pointed at by MATCHING_CONFIG_PATH
// overrides individual keys without code changes.
type Tuning struct {
	Scorer    matching.Config         `mapstructure:"scorer"`
	Extractor feature.ExtractorConfig `mapstructure:"extractor"`

	BehaviorWeights map[string]float64 `mapstructure:"behavior_weights"`

	Generation GenerationConfig `mapstructure:"generation"`
}

type GenerationConfig struct {
	TopN        int `mapstructure:"top_n"`
	LockSeconds int `mapstructure:"lock_seconds"`
}

func defaultTuning() Tuning {
	scorer := matching.DefaultConfig()
	extractor := feature.DefaultExtractorConfig()
	weights := behavior.DefaultWeights()

	bw := make(map[string]float64, len(weights))
	for t, w := range weights {
		bw[string(t)] = w
	}

	return Tuning{
		Scorer:          scorer,
		Extractor:       extractor,
		BehaviorWeights: bw,
		Generation:      GenerationConfig{TopN: 10, LockSeconds: 60},
	}
}

// LoadTuning reads the tuning file at path, or returns compiled defaults when
// path is empty.
func LoadTuning(path string) (Tuning, error) {
	def := defaultTuning()

	v := viper.New()
	v.SetDefault("scorer.major_keyword_bonus", def.Scorer.MajorKeywordBonus)
	v.SetDefault("scorer.skill_overlap_weight", def.Scorer.SkillOverlapWeight)
	v.SetDefault("scorer.interest_overlap_weight", def.Scorer.InterestOverlapWeight)
	v.SetDefault("scorer.education_bonus", def.Scorer.EducationBonus)
	v.SetDefault("scorer.education_penalty", def.Scorer.EducationPenalty)
	v.SetDefault("scorer.location_bonus", def.Scorer.LocationBonus)
	v.SetDefault("scorer.job_type_bonus", def.Scorer.JobTypeBonus)
	v.SetDefault("scorer.max_reasons", def.Scorer.MaxReasons)
	v.SetDefault("extractor.trigger_words", def.Extractor.TriggerWords)
	v.SetDefault("extractor.stop_words", def.Extractor.StopWords)
	v.SetDefault("extractor.fallback_skills", def.Extractor.FallbackSkills)
	v.SetDefault("extractor.max_skills", def.Extractor.MaxSkills)
	v.SetDefault("extractor.max_keywords", def.Extractor.MaxKeywords)
	v.SetDefault("extractor.min_skills", def.Extractor.MinSkills)
	v.SetDefault("behavior_weights", def.BehaviorWeights)
	v.SetDefault("generation.top_n", def.Generation.TopN)
	v.SetDefault("generation.lock_seconds", def.Generation.LockSeconds)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Tuning{}, fmt.Errorf("read tuning file: %w", err)
		}
	}

	var t Tuning
	if err := v.Unmarshal(&t); err != nil {
		return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
	}
	return t, nil
}

// Weights converts the string-keyed table from the tuning file into the
// behavior weight map, dropping unknown interaction types.
func (t Tuning) Weights() behavior.Weights {
	out := behavior.DefaultWeights()
	for k, w := range t.BehaviorWeights {
		typ, err := behavior.ParseType(k)
		if err != nil {
			continue
		}
		out[typ] = w
	}
	return out
}
