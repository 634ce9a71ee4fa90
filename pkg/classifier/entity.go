package classifier

import (
	"context"
	"time"
)

// Verdict is the categorical outcome of the authenticity score.
type Verdict string

const (
	VerdictAuthentic   Verdict = "Authentic"
	VerdictNeedsReview Verdict = "NeedsReview"
	VerdictError       Verdict = "Error"
)

// Label returns the Russian display label.
func (v Verdict) Label() string {
	switch v {
	case VerdictAuthentic:
		return "Достоверно"
	case VerdictNeedsReview:
		return "Требует проверки"
	case VerdictError:
		return "Ошибка анализа"
	default:
		return "Не проверено"
	}
}

// Result описывает структурированный результат анализа резюме.
type Result struct {
	Score           float64   `json:"score"`
	Verdict         Verdict   `json:"verdict"`
	Position        string    `json:"detectedPosition"`
	Skills          []string  `json:"detectedSkills"`
	ExperienceLevel string    `json:"experienceLevel"`
	Flags           []string  `json:"flags"`
	Recommendations []string  `json:"recommendations"`
	Engine          string    `json:"engine"`
	Filename        string    `json:"filename,omitempty"`
	AnalyzedAt      time.Time `json:"analyzedAt"`
}

// Payload is the full structured snapshot persisted next to the analysis row.
func (r Result) Payload() map[string]any {
	return map[string]any{
		"score":             r.Score,
		"verdict":           string(r.Verdict),
		"verdict_label":     r.Verdict.Label(),
		"detected_position": r.Position,
		"detected_skills":   r.Skills,
		"experience_level":  r.ExperienceLevel,
		"flags":             r.Flags,
		"recommendations":   r.Recommendations,
		"engine":            r.Engine,
		"filename":          r.Filename,
		"analysis_date":     r.AnalyzedAt.Format(time.RFC3339),
	}
}

// Analyzer derives structured attributes from resume text.
// Implementations never fail: degraded input yields a VerdictError result.
type Analyzer interface {
	Analyze(ctx context.Context, text, filename string) Result
}
