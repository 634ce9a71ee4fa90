package interview

import (
	"fmt"
	"math/rand"
)

// PositionPool holds the position-specific questions and the technical areas
// used for level-phrased prompts.
type PositionPool struct {
	Questions []string
	Technical []string
}

// Bank is the question source for generated interviews.
type Bank struct {
	Generic         []string
	Positions       map[string]PositionPool
	DefaultPosition string
}

const (
	genericPerSession   = 3
	positionPerSession  = 2
	technicalPerSession = 2
)

func DefaultBank() Bank {
	return Bank{
		Generic: []string{
			"Расскажите о себе и вашем профессиональном опыте",
			"Почему вы заинтересованы в этой позиции?",
			"Какие ваши сильные профессиональные качества?",
			"Какие области вы хотели бы развивать?",
			"Почему вы хотите работать в нашей компании?",
			"Как вы справляетесь со стрессом и сжатыми сроками?",
			"Расскажите о вашем самом значительном профессиональном достижении",
			"Как вы принимаете решения в сложных ситуациях?",
			"Как вы продолжаете профессионально развиваться?",
			"Где вы видите себя через 5 лет?",
		},
		Positions: map[string]PositionPool{
			"Разработчик": {
				Technical: []string{"ООП принципы", "Алгоритмы", "Базы данных", "Тестирование"},
				Questions: []string{
					"Расскажите о вашем опыте работы с Python",
					"Как вы организуете процесс разработки?",
					"Пример решения сложной технической задачи",
					"Ваш подход к код-ревью",
				},
			},
			"Менеджер": {
				Technical: []string{"Управление проектами", "Бюджетирование", "Командная работа", "Отчетность"},
				Questions: []string{
					"Как вы управляете конфликтами в команде?",
					"Пример успешного проекта под вашим руководством",
					"Ваш подход к планированию и контролю сроков",
					"Как мотивируете команду?",
				},
			},
			"Аналитик": {
				Technical: []string{"SQL", "Аналитика данных", "Визуализация", "Статистика"},
				Questions: []string{
					"Как вы собираете и анализируете требования?",
					"Пример сложного аналитического отчета",
					"Ваши инструменты для анализа данных",
					"Как вы проверяете качество данных?",
				},
			},
			"Дизайнер": {
				Technical: []string{"UI/UX", "Прототипирование", "Исследования", "Инструменты дизайна"},
				Questions: []string{
					"Опишите ваш процесс создания дизайна",
					"Как вы проводите пользовательские исследования?",
					"Пример решения сложной дизайн-задачи",
					"Ваш подход к созданию UI kit",
				},
			},
		},
		DefaultPosition: "Разработчик",
	}
}

// Pool returns the pool for position, falling back to the default position.
func (b Bank) Pool(position string) (string, PositionPool) {
	if p, ok := b.Positions[position]; ok {
		return position, p
	}
	return b.DefaultPosition, b.Positions[b.DefaultPosition]
}

// Generate builds a question list: generic questions, then position questions,
// then level-phrased technical prompts, truncated to count. Each pool is sampled
// without replacement; pools are sampled independently.
func (b Bank) Generate(rng *rand.Rand, position, level string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	_, pool := b.Pool(position)

	out := make([]string, 0, genericPerSession+positionPerSession+technicalPerSession)
	out = append(out, sample(rng, b.Generic, genericPerSession)...)
	out = append(out, sample(rng, pool.Questions, positionPerSession)...)
	for _, area := range sample(rng, pool.Technical, technicalPerSession) {
		out = append(out, TechnicalPrompt(level, area))
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// TechnicalPrompt phrases a technical area for the candidate level.
// Anything other than Junior or Middle gets the senior phrasing.
func TechnicalPrompt(level, area string) string {
	switch level {
	case "Junior":
		return fmt.Sprintf("Основные понятия в области %s", area)
	case "Middle":
		return fmt.Sprintf("Практическое применение %s в проектах", area)
	default:
		return fmt.Sprintf("Архитектурные решения и лучшие практики в %s", area)
	}
}

func sample(rng *rand.Rand, pool []string, n int) []string {
	n = min(n, len(pool))
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
