package interview

import (
	"math"
	"strings"
	"unicode"

	"github.com/artem13815/recruit/pkg/nlp"
)

// Criteria names, in report order.
const (
	CriterionCompleteness = "полнота"
	CriterionRelevance    = "релевантность"
	CriterionStructure    = "структурированность"
	CriterionExamples     = "примеры"
)

var criteriaOrder = []string{CriterionCompleteness, CriterionRelevance, CriterionStructure, CriterionExamples}

const (
	minCriterion   = 3
	maxCriterion   = 10
	goodCriterion  = 8
	briefWordCount = 20
)

// Evaluation is the score of a single answer.
type Evaluation struct {
	Score    float64        `json:"score"`
	Criteria map[string]int `json:"criteria"`
	Feedback []string       `json:"feedback"`
}

// Evaluator scores one answer. Implementations must return criteria in [0,10].
type Evaluator interface {
	Evaluate(question, answer, position string) Evaluation
}

var exampleMarkers = []string{
	"например", "к примеру", "в проекте", "на проекте", "когда я", "у нас был", "случай",
	"for example", "for instance", "e.g.", "in my project",
}

var feedbackNotes = map[string][2]string{
	CriterionCompleteness: {"✅ Ответ полный и развернутый", "💡 Можно добавить больше деталей"},
	CriterionRelevance:    {"✅ Ответ по существу вопроса", "💡 Ближе держитесь темы вопроса"},
	CriterionStructure:    {"✅ Ответ хорошо структурирован", "💡 Разбейте ответ на логические части"},
	CriterionExamples:     {"✅ Хорошие примеры из практики", "💡 Добавьте конкретные примеры"},
}

const brevityWarning = "💡 Ответ слишком краткий, раскройте тему подробнее"

// HeuristicEvaluator scores answers from their text alone. It is deterministic.
type HeuristicEvaluator struct{}

func (HeuristicEvaluator) Evaluate(question, answer, _ string) Evaluation {
	words := nlp.WordCount(answer)
	criteria := map[string]int{
		CriterionCompleteness: completeness(words),
		CriterionRelevance:    relevance(question, answer),
		CriterionStructure:    structure(nlp.SentenceCount(answer)),
		CriterionExamples:     examples(nlp.Fold(answer)),
	}

	sum := 0
	feedback := make([]string, 0, len(criteriaOrder)+1)
	for _, name := range criteriaOrder {
		v := criteria[name]
		sum += v
		if v >= goodCriterion {
			feedback = append(feedback, feedbackNotes[name][0])
		} else {
			feedback = append(feedback, feedbackNotes[name][1])
		}
	}
	if words < briefWordCount {
		feedback = append(feedback, brevityWarning)
	}
	return Evaluation{
		Score:    round1(float64(sum) / float64(len(criteriaOrder))),
		Criteria: criteria,
		Feedback: feedback,
	}
}

func completeness(words int) int {
	return clampCriterion(minCriterion + words/10)
}

// relevance measures how many question stems reappear in the answer.
func relevance(question, answer string) int {
	qs := stems(question)
	if len(qs) == 0 {
		return 6
	}
	as := stems(answer)
	hit := 0
	for s := range qs {
		if _, ok := as[s]; ok {
			hit++
		}
	}
	ratio := min(1, 2*float64(hit)/float64(len(qs)))
	return clampCriterion(minCriterion + int(math.Round(7*ratio)))
}

func structure(sentences int) int {
	switch {
	case sentences >= 5:
		return 10
	case sentences >= 3:
		return 8
	case sentences == 2:
		return 6
	case sentences == 1:
		return 4
	default:
		return minCriterion
	}
}

func examples(folded string) int {
	n := 0
	for _, m := range exampleMarkers {
		if strings.Contains(folded, m) {
			n++
		}
	}
	if strings.IndexFunc(folded, unicode.IsDigit) >= 0 {
		n++
	}
	switch {
	case n >= 3:
		return 10
	case n == 2:
		return 8
	case n == 1:
		return 6
	default:
		return minCriterion
	}
}

// stems cuts tokens to five runes, enough to match Russian word forms.
func stems(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for t := range nlp.Tokens(s, 4) {
		r := []rune(t)
		if len(r) > 5 {
			r = r[:5]
		}
		out[string(r)] = struct{}{}
	}
	return out
}

func clampCriterion(v int) int {
	return min(max(v, minCriterion), maxCriterion)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
