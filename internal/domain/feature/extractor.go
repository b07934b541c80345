package feature

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PostingText carries the free-text fields of a posting that feature
// extraction reads. It deliberately excludes everything else about the job.
type PostingText struct {
	Title        string
	Requirements string
	Description  string
	JobType      string
}

// ExtractorConfig externalizes the word lists and caps so extraction can be
// tuned without code changes. Zero values fall back to Defaults.
type ExtractorConfig struct {
	TriggerWords   []string `mapstructure:"trigger_words"`
	StopWords      []string `mapstructure:"stop_words"`
	FallbackSkills []string `mapstructure:"fallback_skills"`
	MaxSkills      int      `mapstructure:"max_skills"`
	MaxKeywords    int      `mapstructure:"max_keywords"`
	MinSkills      int      `mapstructure:"min_skills"`
}

func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		TriggerWords: []string{
			"requirement", "require", "proficient", "familiar", "skill",
			"experience", "knowledge", "ability", "master",
			"要求", "熟练", "熟悉", "掌握", "技能", "经验", "能力", "精通", "了解", "会使用",
		},
		StopWords: []string{
			"the", "and", "for", "with", "our", "you", "are", "will", "have",
			"job", "work", "team", "position", "company",
			"我们", "公司", "工作", "岗位", "职位", "负责", "以及", "相关", "进行", "一个",
		},
		FallbackSkills: []string{"communication", "teamwork", "problem solving"},
		MaxSkills:      10,
		MaxKeywords:    15,
		MinSkills:      3,
	}
}

// Extractor turns posting text into skill and keyword sets. Extraction is a
// pure string pass: the same input always yields the same sets, and blank
// input degrades to the fallback skills rather than failing.
type Extractor struct {
	cfg        ExtractorConfig
	tokenizers []Tokenizer
}

func NewExtractor(cfg ExtractorConfig) *Extractor {
	def := DefaultExtractorConfig()
	if len(cfg.TriggerWords) == 0 {
		cfg.TriggerWords = def.TriggerWords
	}
	if len(cfg.StopWords) == 0 {
		cfg.StopWords = def.StopWords
	}
	if len(cfg.FallbackSkills) == 0 {
		cfg.FallbackSkills = def.FallbackSkills
	}
	if cfg.MaxSkills <= 0 {
		cfg.MaxSkills = def.MaxSkills
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = def.MaxKeywords
	}
	if cfg.MinSkills <= 0 {
		cfg.MinSkills = def.MinSkills
	}
	return &Extractor{
		cfg:        cfg,
		tokenizers: []Tokenizer{LatinTokenizer{}, CJKTokenizer{}},
	}
}

// Extract produces the skill and keyword sets for a posting. Skills come from
// the requirements text, topped up from the description when the requirements
// yield fewer than the configured minimum, and fall back to a generic set when
// both are empty of signal.
func (e *Extractor) Extract(in PostingText) (skills []string, keywords []string) {
	skills = e.skillCandidates(in.Requirements)
	if len(dedupe(skills, 0)) < e.cfg.MinSkills {
		skills = append(skills, e.skillCandidates(in.Description)...)
	}
	skills = dedupe(skills, e.cfg.MaxSkills)
	if len(skills) == 0 {
		skills = append(skills, e.cfg.FallbackSkills...)
		if len(skills) > e.cfg.MaxSkills {
			skills = skills[:e.cfg.MaxSkills]
		}
	}

	keywords = e.tokens(in.Title)
	if label := JobTypeLabel(in.JobType); label != "" {
		keywords = append(keywords, label)
	}
	keywords = append(keywords, e.tokens(firstParagraph(in.Description))...)
	keywords = dedupe(e.dropStopWords(keywords), e.cfg.MaxKeywords)

	return skills, keywords
}

var (
	bracketedAside = regexp.MustCompile(`[(（【\[][^)）】\]]*[)）】\]]`)
	candidateSplit = regexp.MustCompile(`[,，、/;；\s]+`)
)

const candidateTrimCutset = " \t.,;:、，。；：/\\()（）[]【】·~!！?？-"

// skillCandidates extracts candidate skill tokens from skill-bearing lines.
func (e *Extractor) skillCandidates(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	out := make([]string, 0, e.cfg.MaxSkills)
	for _, line := range strings.Split(text, "\n") {
		if !e.skillBearing(line) {
			continue
		}
		line = bracketedAside.ReplaceAllString(line, " ")

		var raw []string
		if i := strings.IndexAny(line, ":："); i >= 0 {
			_, size := utf8.DecodeRuneInString(line[i:])
			raw = candidateSplit.Split(line[i+size:], -1)
		} else {
			raw = e.tokens(line)
		}

		for _, c := range raw {
			c = strings.Trim(c, candidateTrimCutset)
			if c == "" || e.isTrigger(c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func (e *Extractor) skillBearing(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range e.cfg.TriggerWords {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// isTrigger guards against trigger phrases themselves surviving as skills,
// e.g. a CJK run like "熟练掌握" on a line without a colon.
func (e *Extractor) isTrigger(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, w := range e.cfg.TriggerWords {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func (e *Extractor) tokens(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, t := range e.tokenizers {
		out = append(out, t.Tokens(s)...)
	}
	return out
}

func (e *Extractor) dropStopWords(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if utf8.RuneCountInString(t) <= 1 {
			continue
		}
		if e.isStopWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (e *Extractor) isStopWord(t string) bool {
	lower := strings.ToLower(t)
	for _, w := range e.cfg.StopWords {
		if strings.EqualFold(lower, w) {
			return true
		}
	}
	return false
}

// firstParagraph returns the description up to the first blank line.
func firstParagraph(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			break
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// dedupe removes duplicates preserving first-seen order. Comparison is
// case-insensitive so "SQL" and "sql" count once; the first spelling wins.
// A max of 0 means no cap.
func dedupe(items []string, max int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
