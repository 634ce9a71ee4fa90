package interview

// Tier is the final verdict bucket of an interview.
type Tier string

const (
	TierNotCompleted     Tier = "not_completed"
	TierStrongHire       Tier = "strong_hire"
	TierGoodNeedsVetting Tier = "good_needs_vetting"
	TierNeedsDevelopment Tier = "needs_development"
)

// Feedback is the final result of an interview.
type Feedback struct {
	TotalScore             float64  `json:"totalScore"`
	Tier                   Tier     `json:"tier"`
	Verdict                string   `json:"verdict"`
	DetailedFeedback       []string `json:"detailedFeedback"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
}

var improvementSuggestions = []string{
	"Практикуйтесь отвечать на стандартные вопросы интервью",
	"Изучите больше о компании и позиции",
	"Подготовьте конкретные примеры из вашего опыта",
	"Потренируйтесь в решении технических задач",
}

// Finalize aggregates per-question scores. The tier depends only on the mean,
// rounded to one decimal; the bullet lists are fixed per tier.
func Finalize(scores []float64) Feedback {
	if len(scores) == 0 {
		return Feedback{
			TotalScore:       0,
			Tier:             TierNotCompleted,
			Verdict:          "Собеседование не завершено",
			DetailedFeedback: []string{"❌ Не было дано ответов на вопросы"},
			ImprovementSuggestions: []string{
				"Попробуйте пройти собеседование еще раз",
				"Отвечайте на все вопросы подробно",
			},
		}
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	total := round1(sum / float64(len(scores)))

	fb := Feedback{
		TotalScore:             total,
		ImprovementSuggestions: append([]string(nil), improvementSuggestions...),
	}
	switch {
	case total >= 9:
		fb.Tier = TierStrongHire
		fb.Verdict = "Отличный кандидат! Рекомендуем к найму"
		fb.DetailedFeedback = []string{
			"✅ Сильное соответствие требованиям позиции",
			"✅ Отличные технические знания",
			"✅ Хорошие коммуникативные навыки",
			"✅ Мотивирован и целеустремлен",
		}
	case total >= 7:
		fb.Tier = TierGoodNeedsVetting
		fb.Verdict = "Хороший кандидат, требует дополнительной проверки"
		fb.DetailedFeedback = []string{
			"✅ Соответствует основным требованиям",
			"⚠️ Некоторые области требуют развития",
			"✅ Хороший потенциал для роста",
			"💡 Рекомендуем дополнительное интервью",
		}
	default:
		fb.Tier = TierNeedsDevelopment
		fb.Verdict = "Требует серьезной доработки"
		fb.DetailedFeedback = []string{
			"❌ Недостаточный опыт/знания",
			"💡 Рекомендуем пройти обучение",
			"💡 Нужно поработать над ответами",
			"💡 Рассмотреть через 6-12 месяцев",
		}
	}
	return fb
}
