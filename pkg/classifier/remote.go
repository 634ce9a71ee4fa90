package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/llm"
	"github.com/artem13815/recruit/pkg/logger"
)

const EngineRemote = "remote"

// Remote asks a chat model for the analysis and falls back to the heuristic
// result whenever the model is unavailable or answers with something unusable.
type Remote struct {
	model    llm.ChatModel
	fallback *Heuristic
	maxChars int
	log      *zap.Logger
}

func NewRemote(model llm.ChatModel, fallback *Heuristic, log *zap.Logger) *Remote {
	return &Remote{model: model, fallback: fallback, maxChars: 12000, log: logger.OrNop(log)}
}

type remotePayload struct {
	Score           *float64 `json:"score"`
	Position        string   `json:"detectedPosition"`
	Skills          []string `json:"detectedSkills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Flags           []string `json:"flags"`
	Recommendations []string `json:"recommendations"`
}

func (r *Remote) Analyze(ctx context.Context, text, filename string) Result {
	base := r.fallback.Analyze(ctx, text, filename)
	if base.Verdict == VerdictError || r.model == nil {
		return base
	}

	out, err := r.ask(ctx, text)
	if err != nil {
		r.log.Warn("remote analyzer failed, using heuristic result",
			zap.String("filename", filename), zap.Error(err))
		return base
	}

	res := base
	res.Engine = EngineRemote
	res.Score = *out.Score
	if out.Position != "" {
		res.Position = out.Position
	}
	if out.ExperienceLevel != "" {
		res.ExperienceLevel = out.ExperienceLevel
	}
	if len(out.Skills) > 0 {
		res.Skills = out.Skills[:min(len(out.Skills), r.fallback.rules.MaxSkills)]
	}
	if len(out.Flags) > 0 {
		res.Flags = out.Flags
	}
	if len(out.Recommendations) > 0 {
		res.Recommendations = out.Recommendations
	}
	res.Verdict = VerdictNeedsReview
	if res.Score >= float64(r.fallback.rules.Scoring.AuthenticThreshold) {
		res.Verdict = VerdictAuthentic
	}
	return res
}

func (r *Remote) ask(ctx context.Context, text string) (remotePayload, error) {
	if utf8.RuneCountInString(text) > r.maxChars {
		text = string([]rune(text)[:r.maxChars])
	}
	system := "Ты HR-аналитик. Оцени правдоподобность резюме. Верни результат СТРОГО в JSON без пояснений."
	user := fmt.Sprintf(
		"Текст резюме:\n<<<\n%s\n>>>\n\nВерни JSON с полями:\n- score (number 0..100)\n- detectedPosition (string)\n- detectedSkills (string[])\n- experienceLevel (Junior|Middle|Senior)\n- flags (string[])\n- recommendations (string[])\n",
		text,
	)
	raw, err := r.model.Ask(ctx, system, user)
	if err != nil {
		return remotePayload{}, err
	}
	raw = strings.TrimSpace(raw)

	var out remotePayload
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		i, j := strings.Index(raw, "{"), strings.LastIndex(raw, "}")
		if i < 0 || j <= i {
			return remotePayload{}, fmt.Errorf("decode model answer: %w", err)
		}
		if err := json.Unmarshal([]byte(raw[i:j+1]), &out); err != nil {
			return remotePayload{}, fmt.Errorf("decode model answer: %w", err)
		}
	}
	if out.Score == nil {
		return remotePayload{}, errors.New("model answer has no score")
	}
	if *out.Score < 0 || *out.Score > 100 {
		return remotePayload{}, fmt.Errorf("model score %.1f out of range", *out.Score)
	}
	return out, nil
}

// Options selects and configures the analyzer at construction time.
type Options struct {
	Mode  string // "heuristic" (default) or "remote"
	Rules Rules
	Seed  int64
	Model llm.ChatModel
}

// New returns the analyzer selected by opts.Mode.
func New(opts Options, log *zap.Logger) Analyzer {
	h := NewHeuristic(opts.Rules, opts.Seed, log)
	if opts.Mode == EngineRemote && opts.Model != nil {
		return NewRemote(opts.Model, h, log)
	}
	return h
}
