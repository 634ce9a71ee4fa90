package classifier

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// PositionRule maps a keyword to a position. Rules are evaluated in table order.
type PositionRule struct {
	Keyword  string `yaml:"keyword"`
	Position string `yaml:"position"`
}

type SkillRule struct {
	Keyword string `yaml:"keyword"`
	Skill   string `yaml:"skill"`
}

// LevelRule matches when any keyword is present; tiers are checked in table order.
type LevelRule struct {
	Level    string   `yaml:"level"`
	Keywords []string `yaml:"keywords"`
}

type Sections struct {
	Experience []string `yaml:"experience"`
	Education  []string `yaml:"education"`
	Skills     []string `yaml:"skills"`
}

type Scoring struct {
	Base               int `yaml:"base"`
	LongTextChars      int `yaml:"long_text_chars"`
	LongTextBonus      int `yaml:"long_text_bonus"`
	ExperienceBonus    int `yaml:"experience_bonus"`
	EducationBonus     int `yaml:"education_bonus"`
	SkillsBonus        int `yaml:"skills_bonus"`
	PerturbMin         int `yaml:"perturb_min"`
	PerturbMax         int `yaml:"perturb_max"`
	ClampMin           int `yaml:"clamp_min"`
	ClampMax           int `yaml:"clamp_max"`
	AuthenticThreshold int `yaml:"authentic_threshold"`
}

type Flags struct {
	TooShort     string `yaml:"too_short"`
	NoExperience string `yaml:"no_experience"`
	NoEducation  string `yaml:"no_education"`
	OK           string `yaml:"ok"`
}

// Rules is the full keyword table of the heuristic analyzer.
type Rules struct {
	Positions              []PositionRule    `yaml:"positions"`
	FallbackPosition       string            `yaml:"fallback_position"`
	Skills                 []SkillRule       `yaml:"skills"`
	MaxSkills              int               `yaml:"max_skills"`
	Levels                 []LevelRule       `yaml:"levels"`
	FallbackLevel          string            `yaml:"fallback_level"`
	Sections               Sections          `yaml:"sections"`
	Scoring                Scoring           `yaml:"scoring"`
	MinLength              int               `yaml:"min_length"`
	Flags                  Flags             `yaml:"flags"`
	Recommendations        map[string]string `yaml:"recommendations"`
	GenericRecommendations []string          `yaml:"generic_recommendations"`
}

// DefaultRules returns the embedded table.
func DefaultRules() Rules {
	r, err := LoadRules(strings.NewReader(string(defaultRulesYAML)))
	if err != nil {
		panic(fmt.Sprintf("embedded classifier rules are invalid: %v", err))
	}
	return r
}

// LoadRules parses and validates a YAML rule table. Keywords are folded to lower case.
func LoadRules(r io.Reader) (Rules, error) {
	var rules Rules
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		return Rules{}, fmt.Errorf("decode rules: %w", err)
	}
	rules.fold()
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// LoadRulesFile reads a rule table from path; empty path returns the embedded table.
func LoadRulesFile(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()
	return LoadRules(f)
}

func (r *Rules) fold() {
	for i := range r.Positions {
		r.Positions[i].Keyword = strings.ToLower(r.Positions[i].Keyword)
	}
	for i := range r.Skills {
		r.Skills[i].Keyword = strings.ToLower(r.Skills[i].Keyword)
	}
	for i := range r.Levels {
		r.Levels[i].Keywords = lowerAll(r.Levels[i].Keywords)
	}
	r.Sections.Experience = lowerAll(r.Sections.Experience)
	r.Sections.Education = lowerAll(r.Sections.Education)
	r.Sections.Skills = lowerAll(r.Sections.Skills)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

// Validate checks the invariants the analyzer relies on.
func (r Rules) Validate() error {
	var errs []error
	if r.FallbackPosition == "" {
		errs = append(errs, errors.New("fallback_position is required"))
	}
	if r.FallbackLevel == "" {
		errs = append(errs, errors.New("fallback_level is required"))
	}
	if r.MaxSkills <= 0 {
		errs = append(errs, errors.New("max_skills must be positive"))
	}
	s := r.Scoring
	if s.PerturbMin > s.PerturbMax {
		errs = append(errs, errors.New("perturb_min must not exceed perturb_max"))
	}
	if s.ClampMin > s.ClampMax || s.ClampMin < 0 || s.ClampMax > 100 {
		errs = append(errs, errors.New("clamp range must lie within [0,100]"))
	}
	if r.Flags.OK == "" {
		errs = append(errs, errors.New("flags.ok is required"))
	}
	if len(r.GenericRecommendations) == 0 {
		errs = append(errs, errors.New("generic_recommendations must not be empty"))
	}
	for i, p := range r.Positions {
		if p.Keyword == "" || p.Position == "" {
			errs = append(errs, fmt.Errorf("positions[%d]: keyword and position are required", i))
		}
	}
	return errors.Join(errs...)
}
