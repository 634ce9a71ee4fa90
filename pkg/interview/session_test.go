package interview

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedEvaluator returns the queued scores in order.
type fixedEvaluator struct {
	scores []float64
	i      int
}

func (f *fixedEvaluator) Evaluate(string, string, string) Evaluation {
	s := f.scores[f.i%len(f.scores)]
	f.i++
	return Evaluation{Score: s, Criteria: map[string]int{}, Feedback: []string{}}
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newStarted(t *testing.T, n int) *Session {
	t.Helper()
	qs := make([]string, n)
	for i := range qs {
		qs[i] = "вопрос"
	}
	s := NewSession(uuid.New(), nil, "Разработчик", "Middle", TypeTechnical, qs)
	require.Equal(t, StateConfigured, s.State)
	require.NoError(t, s.Begin(t0))
	return s
}

func assertLockstep(t *testing.T, s *Session) {
	t.Helper()
	assert.Len(t, s.Answers, s.CurrentIndex)
	assert.Len(t, s.Evaluations, s.CurrentIndex)
	assert.LessOrEqual(t, s.CurrentIndex, len(s.Questions))
}

func TestSessionCompletesAfterLastAnswer(t *testing.T) {
	s := newStarted(t, 5)
	ev := &fixedEvaluator{scores: []float64{8, 9, 8, 8, 9}}

	for i := 0; i < 5; i++ {
		assert.Equal(t, StateInProgress, s.State)
		_, err := s.SubmitAnswer(ev, "ответ", t0.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, err)
		assertLockstep(t, s)
	}

	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, 5*time.Minute, s.Duration(t0.Add(time.Hour)))
	fb := Finalize(s.Scores())
	assert.Equal(t, 8.4, fb.TotalScore)
	assert.Equal(t, TierGoodNeedsVetting, fb.Tier)

	_, err := s.SubmitAnswer(ev, "ещё", t0)
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestEmptyAnswerIsRejectedWithoutChange(t *testing.T) {
	s := newStarted(t, 3)

	_, err := s.SubmitAnswer(HeuristicEvaluator{}, "  \n\t", t0)

	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Equal(t, 0, s.CurrentIndex)
	assertLockstep(t, s)
	q, ok := s.CurrentQuestion()
	assert.True(t, ok)
	assert.Equal(t, "вопрос", q)
}

func TestAbortOnlyFromInProgress(t *testing.T) {
	s := NewSession(uuid.New(), nil, "Разработчик", "Middle", TypeBehavioral, []string{"a", "b"})
	assert.ErrorIs(t, s.Abort(t0), ErrNotInProgress)

	require.NoError(t, s.Begin(t0))
	_, err := s.SubmitAnswer(HeuristicEvaluator{}, "ответ", t0)
	require.NoError(t, err)
	require.NoError(t, s.Abort(t0.Add(time.Minute)))

	assert.Equal(t, StateAborted, s.State)
	assert.ErrorIs(t, s.Abort(t0), ErrNotInProgress)
	answered, total := s.Progress()
	assert.Equal(t, 1, answered)
	assert.Equal(t, 2, total)
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
}

func TestBeginRequiresQuestions(t *testing.T) {
	s := NewSession(uuid.New(), nil, "", "", TypeTechnical, nil)

	assert.ErrorIs(t, s.Begin(t0), ErrNoQuestions)
	assert.Equal(t, StateConfigured, s.State)
}
