package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateShortAnswer(t *testing.T) {
	ev := HeuristicEvaluator{}.Evaluate("Как вы организуете процесс разработки?", "Никак", "Разработчик")

	assert.Len(t, ev.Criteria, 4)
	for name, v := range ev.Criteria {
		assert.GreaterOrEqual(t, v, 3, name)
		assert.LessOrEqual(t, v, 10, name)
	}
	assert.Contains(t, ev.Feedback, "💡 Можно добавить больше деталей")
	assert.Contains(t, ev.Feedback, "💡 Добавьте конкретные примеры")
	assert.Equal(t, brevityWarning, ev.Feedback[len(ev.Feedback)-1])
}

func TestEvaluateDetailedAnswer(t *testing.T) {
	answer := strings.Repeat("Процесс разработки я организую через короткие итерации и ревью. ", 8) +
		"Например, в проекте платежей мы сократили время релиза на 40%. Когда я пришёл в команду, случай с падением прода стал поводом внедрить CI."

	ev := HeuristicEvaluator{}.Evaluate("Как вы организуете процесс разработки?", answer, "Разработчик")

	assert.Equal(t, 10, ev.Criteria[CriterionCompleteness])
	assert.Equal(t, 10, ev.Criteria[CriterionRelevance])
	assert.Equal(t, 10, ev.Criteria[CriterionStructure])
	assert.Equal(t, 10, ev.Criteria[CriterionExamples])
	assert.Equal(t, 10.0, ev.Score)
	assert.NotContains(t, ev.Feedback, brevityWarning)
	assert.Contains(t, ev.Feedback, "✅ Ответ полный и развернутый")
}

func TestEvaluateScoreIsRoundedMean(t *testing.T) {
	ev := HeuristicEvaluator{}.Evaluate("Где вы видите себя через 5 лет?", "Вижу себя тимлидом. Хочу расти.", "")

	sum := 0
	for _, v := range ev.Criteria {
		sum += v
	}
	assert.Equal(t, round1(float64(sum)/4), ev.Score)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	a := HeuristicEvaluator{}.Evaluate("q", "одинаковый ответ", "")
	b := HeuristicEvaluator{}.Evaluate("q", "одинаковый ответ", "")

	assert.Equal(t, a, b)
}
