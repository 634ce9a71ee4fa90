package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubModel struct {
	answer string
	err    error
	calls  int
}

func (s *stubModel) Ask(context.Context, string, string) (string, error) {
	s.calls++
	return s.answer, s.err
}

func (s *stubModel) ModelName() string { return "stub-model" }

func TestRemoteUsesModelAnswer(t *testing.T) {
	model := &stubModel{answer: "```json\n{\"score\": 91, \"detectedPosition\": \"Аналитик\", \"experienceLevel\": \"Senior\", \"flags\": [\"ok\"]}\n```"}
	a := New(Options{Mode: EngineRemote, Rules: DefaultRules(), Seed: 1, Model: model}, nil)

	res := a.Analyze(context.Background(), fullResume(600), "cv.pdf")

	assert.Equal(t, EngineRemote, res.Engine)
	assert.Equal(t, 91.0, res.Score)
	assert.Equal(t, VerdictAuthentic, res.Verdict)
	assert.Equal(t, "Аналитик", res.Position)
	assert.Equal(t, "Senior", res.ExperienceLevel)
	assert.Equal(t, []string{"ok"}, res.Flags)
	assert.NotEmpty(t, res.Recommendations)
}

func TestRemoteFallsBackOnFailure(t *testing.T) {
	cases := map[string]*stubModel{
		"model error":    {err: errors.New("timeout")},
		"not json":       {answer: "sorry, I cannot"},
		"missing score":  {answer: `{"detectedPosition": "X"}`},
		"score too high": {answer: `{"score": 150}`},
	}
	for name, model := range cases {
		t.Run(name, func(t *testing.T) {
			a := New(Options{Mode: EngineRemote, Rules: DefaultRules(), Seed: 1, Model: model}, nil)

			res := a.Analyze(context.Background(), fullResume(600), "")

			assert.Equal(t, EngineHeuristic, res.Engine)
			assert.Equal(t, 1, model.calls)
		})
	}
}

func TestRemoteSkipsModelForDegradedInput(t *testing.T) {
	model := &stubModel{answer: `{"score": 90}`}
	a := New(Options{Mode: EngineRemote, Rules: DefaultRules(), Model: model}, nil)

	res := a.Analyze(context.Background(), "", "")

	assert.Equal(t, VerdictError, res.Verdict)
	assert.Zero(t, model.calls)
}

func TestNewDefaultsToHeuristic(t *testing.T) {
	a := New(Options{Mode: "unknown", Rules: DefaultRules()}, nil)

	_, ok := a.(*Heuristic)
	assert.True(t, ok)
}
