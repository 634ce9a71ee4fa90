package classifier

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume(chars int) string {
	head := "Иван Иванов. Python разработчик. Опыт работы: 5 лет в компании. Образование: МГУ. Навыки: Python, SQL, Docker. "
	if pad := chars - len([]rune(head)); pad > 0 {
		return head + strings.Repeat("x", pad)
	}
	return head
}

func TestBaseScoreWithAllSections(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)

	assert.Equal(t, 95, h.BaseScore(fullResume(600)))
}

func TestCompleteResumeYieldsSinglePositiveFlag(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)

	res := h.Analyze(context.Background(), fullResume(600), "cv.txt")

	assert.Equal(t, []string{"Основные разделы присутствуют"}, res.Flags)
	assert.Len(t, res.Recommendations, 3, "generic recommendations expected")
}

func TestAuthenticScenarioAcrossSeeds(t *testing.T) {
	text := fullResume(600)
	require.Equal(t, 600, len([]rune(text)))

	for seed := int64(0); seed < 64; seed++ {
		res := NewHeuristic(DefaultRules(), seed, nil).Analyze(context.Background(), text, "")
		assert.GreaterOrEqual(t, res.Score, 85.0)
		assert.LessOrEqual(t, res.Score, 95.0)
		assert.Equal(t, VerdictAuthentic, res.Verdict)
		assert.Equal(t, "Разработчик", res.Position)
	}
}

func TestScoreStaysInClampRange(t *testing.T) {
	inputs := []string{"коротко", fullResume(200), fullResume(1000), "manager " + strings.Repeat("z", 400)}
	for seed := int64(0); seed < 32; seed++ {
		h := NewHeuristic(DefaultRules(), seed, nil)
		for _, in := range inputs {
			res := h.Analyze(context.Background(), in, "")
			assert.GreaterOrEqual(t, res.Score, 50.0)
			assert.LessOrEqual(t, res.Score, 95.0)
		}
	}
}

func TestAnalyzeIsStableForSameSeed(t *testing.T) {
	text := fullResume(450)
	a := NewHeuristic(DefaultRules(), 7, nil).Analyze(context.Background(), text, "")
	b := NewHeuristic(DefaultRules(), 7, nil).Analyze(context.Background(), text, "")

	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Flags, b.Flags)
}

func TestShortResumeFlagsAndRecommendations(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)

	res := h.Analyze(context.Background(), "Junior designer, Figma", "")

	assert.Equal(t, []string{
		"Слишком краткое резюме",
		"Отсутствует раздел с опытом работы",
		"Отсутствует раздел с образованием",
	}, res.Flags)
	assert.Equal(t, []string{
		"Добавьте больше деталей о проектах и достижениях",
		"Добавьте подробное описание опыта работы",
		"Укажите информацию об образовании",
	}, res.Recommendations)
	assert.Equal(t, "Дизайнер", res.Position)
	assert.Equal(t, "Junior", res.ExperienceLevel)
	assert.LessOrEqual(t, res.Score, 80.0)
}

func TestPositionFirstMatchWins(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)

	assert.Equal(t, "Разработчик", h.DetectPosition("project manager and developer"))
	assert.Equal(t, "Менеджер", h.DetectPosition("sales manager"))
	assert.Equal(t, "Менеджер по продажам", h.DetectPosition("отдел продаж"))
	assert.Equal(t, "Специалист", h.DetectPosition("бухгалтер"))
}

func TestSkillsFollowTableOrderAndCap(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)
	assert.Equal(t, []string{"Python", "Java", "JavaScript", "Docker", "Linux"},
		h.DetectSkills("linux, docker, javascript, python"))

	rules := DefaultRules()
	rules.MaxSkills = 2
	capped := NewHeuristic(rules, 1, nil)
	assert.Equal(t, []string{"Python", "SQL"}, capped.DetectSkills("git sql python react"))
}

func TestLevelPriority(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)

	assert.Equal(t, "Senior", h.DetectLevel("junior developer promoted to senior"))
	assert.Equal(t, "Middle", h.DetectLevel("middle, опыт 3 года"))
	assert.Equal(t, "Не определен", h.DetectLevel("без уровня"))
}

func TestDegradedInput(t *testing.T) {
	h := NewHeuristic(DefaultRules(), 1, nil)

	for _, in := range []string{"", "   \n", UnreadableText} {
		res := h.Analyze(context.Background(), in, "broken.pdf")
		assert.Equal(t, VerdictError, res.Verdict)
		assert.Equal(t, 50.0, res.Score)
		assert.Equal(t, "Ошибка анализа резюме", res.Flags[0])
		assert.Equal(t, "broken.pdf", res.Filename)
		assert.NotNil(t, res.Skills)
	}
}

func TestPayloadCarriesSnapshot(t *testing.T) {
	res := NewHeuristic(DefaultRules(), 1, nil).Analyze(context.Background(), fullResume(600), "cv.docx")
	p := res.Payload()

	assert.Equal(t, res.Score, p["score"])
	assert.Equal(t, "Authentic", p["verdict"])
	assert.Equal(t, "Достоверно", p["verdict_label"])
	assert.Equal(t, "cv.docx", p["filename"])
}
