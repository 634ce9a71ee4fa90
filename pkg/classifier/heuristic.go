package classifier

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/logger"
	"github.com/artem13815/recruit/pkg/nlp"
)

const (
	EngineHeuristic = "heuristic"

	// UnreadableText is what text extraction returns for files it could not read.
	UnreadableText = "Не удалось прочитать файл"

	degradedFlag           = "Ошибка анализа резюме"
	degradedRecommendation = "Попробуйте загрузить резюме в другом формате"
	degradedPosition       = "Не определено"
	degradedScore          = 50
)

// Heuristic is the local keyword analyzer.
type Heuristic struct {
	rules Rules
	seed  int64
	now   func() time.Time
	log   *zap.Logger
}

// NewHeuristic builds an analyzer over rules. The seed only perturbs the score;
// identical text and seed always give the same result.
func NewHeuristic(rules Rules, seed int64, log *zap.Logger) *Heuristic {
	return &Heuristic{
		rules: rules,
		seed:  seed,
		now:   func() time.Time { return time.Now().UTC() },
		log:   logger.OrNop(log),
	}
}

func (h *Heuristic) Analyze(_ context.Context, text, filename string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Warn("heuristic analyzer recovered", zap.Any("panic", r), zap.String("filename", filename))
			res = h.degraded(filename, fmt.Sprintf("внутренняя ошибка: %v", r))
		}
	}()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return h.degraded(filename, "пустой текст резюме")
	}
	if strings.HasPrefix(trimmed, UnreadableText) {
		return h.degraded(filename, "файл не удалось прочитать")
	}

	folded := nlp.Fold(text)
	score := h.clamp(h.baseScore(text, folded) + h.perturbation(text))
	flags := h.flags(text, folded)

	verdict := VerdictNeedsReview
	if score >= h.rules.Scoring.AuthenticThreshold {
		verdict = VerdictAuthentic
	}
	return Result{
		Score:           float64(score),
		Verdict:         verdict,
		Position:        h.DetectPosition(folded),
		Skills:          h.DetectSkills(folded),
		ExperienceLevel: h.DetectLevel(folded),
		Flags:           flags,
		Recommendations: h.recommendations(flags),
		Engine:          EngineHeuristic,
		Filename:        filename,
		AnalyzedAt:      h.now(),
	}
}

// DetectPosition returns the position of the first matching rule.
func (h *Heuristic) DetectPosition(folded string) string {
	for _, p := range h.rules.Positions {
		if strings.Contains(folded, p.Keyword) {
			return p.Position
		}
	}
	return h.rules.FallbackPosition
}

// DetectSkills returns matches in table order, capped at MaxSkills.
func (h *Heuristic) DetectSkills(folded string) []string {
	skills := []string{}
	for _, s := range h.rules.Skills {
		if len(skills) == h.rules.MaxSkills {
			break
		}
		if strings.Contains(folded, s.Keyword) {
			skills = append(skills, s.Skill)
		}
	}
	return skills
}

func (h *Heuristic) DetectLevel(folded string) string {
	for _, l := range h.rules.Levels {
		if nlp.ContainsAny(folded, l.Keywords) {
			return l.Level
		}
	}
	return h.rules.FallbackLevel
}

// BaseScore is the score before perturbation and clamping.
func (h *Heuristic) BaseScore(text string) int {
	return h.baseScore(text, nlp.Fold(text))
}

func (h *Heuristic) baseScore(text, folded string) int {
	sc := h.rules.Scoring
	score := sc.Base
	if nlp.Length(text) > sc.LongTextChars {
		score += sc.LongTextBonus
	}
	if nlp.ContainsAny(folded, h.rules.Sections.Experience) {
		score += sc.ExperienceBonus
	}
	if nlp.ContainsAny(folded, h.rules.Sections.Education) {
		score += sc.EducationBonus
	}
	if nlp.ContainsAny(folded, h.rules.Sections.Skills) {
		score += sc.SkillsBonus
	}
	return score
}

func (h *Heuristic) perturbation(text string) int {
	sc := h.rules.Scoring
	span := sc.PerturbMax - sc.PerturbMin + 1
	if span <= 1 {
		return sc.PerturbMin
	}
	hs := fnv.New64a()
	_, _ = hs.Write([]byte(text))
	rng := rand.New(rand.NewSource(h.seed ^ int64(hs.Sum64())))
	return sc.PerturbMin + rng.Intn(span)
}

func (h *Heuristic) clamp(score int) int {
	sc := h.rules.Scoring
	return min(max(score, sc.ClampMin), sc.ClampMax)
}

func (h *Heuristic) flags(text, folded string) []string {
	var flags []string
	if nlp.Length(text) < h.rules.MinLength {
		flags = append(flags, h.rules.Flags.TooShort)
	}
	if !nlp.ContainsAny(folded, h.rules.Sections.Experience) {
		flags = append(flags, h.rules.Flags.NoExperience)
	}
	if !nlp.ContainsAny(folded, h.rules.Sections.Education) {
		flags = append(flags, h.rules.Flags.NoEducation)
	}
	if len(flags) == 0 {
		flags = append(flags, h.rules.Flags.OK)
	}
	return flags
}

func (h *Heuristic) recommendations(flags []string) []string {
	var recs []string
	for _, f := range flags {
		if rec, ok := h.rules.Recommendations[f]; ok {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		recs = append([]string(nil), h.rules.GenericRecommendations...)
	}
	return recs
}

func (h *Heuristic) degraded(filename, reason string) Result {
	h.log.Warn("resume analysis degraded", zap.String("filename", filename), zap.String("reason", reason))
	return Degraded(filename, reason, h.rules.FallbackLevel, h.now())
}

// Degraded is the safe default analysis for input that could not be analyzed.
func Degraded(filename, reason, level string, at time.Time) Result {
	flags := []string{degradedFlag}
	if reason != "" {
		flags = append(flags, reason)
	}
	return Result{
		Score:           degradedScore,
		Verdict:         VerdictError,
		Position:        degradedPosition,
		Skills:          []string{},
		ExperienceLevel: level,
		Flags:           flags,
		Recommendations: []string{degradedRecommendation},
		Engine:          EngineHeuristic,
		Filename:        filename,
		AnalyzedAt:      at,
	}
}
