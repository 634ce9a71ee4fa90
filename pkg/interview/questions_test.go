package interview

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCounts(t *testing.T) {
	bank := DefaultBank()
	rng := rand.New(rand.NewSource(1))

	for _, position := range []string{"Разработчик", "Менеджер", "Аналитик", "Дизайнер", "Водолаз", ""} {
		for _, level := range []string{"Junior", "Middle", "Senior", "Не определен"} {
			for count := 0; count <= 12; count++ {
				qs := bank.Generate(rng, position, level, count)
				assert.Len(t, qs, min(count, 7), "%s/%s/%d", position, level, count)
			}
		}
	}
}

func TestGenerateLayoutAndUniqueness(t *testing.T) {
	bank := DefaultBank()
	pool := bank.Positions["Аналитик"]

	for seed := int64(0); seed < 20; seed++ {
		qs := bank.Generate(rand.New(rand.NewSource(seed)), "Аналитик", "Junior", 7)
		require.Len(t, qs, 7)

		seen := map[string]bool{}
		for _, q := range qs {
			assert.False(t, seen[q], "duplicate %q", q)
			seen[q] = true
		}
		for _, q := range qs[:3] {
			assert.Contains(t, bank.Generic, q)
		}
		for _, q := range qs[3:5] {
			assert.Contains(t, pool.Questions, q)
		}
		for _, q := range qs[5:] {
			assert.True(t, strings.HasPrefix(q, "Основные понятия в области "), q)
		}
	}
}

func TestUnknownPositionUsesDefaultPool(t *testing.T) {
	bank := DefaultBank()
	qs := bank.Generate(rand.New(rand.NewSource(3)), "Водолаз", "Middle", 5)

	for _, q := range qs[3:] {
		assert.Contains(t, bank.Positions["Разработчик"].Questions, q)
	}
	name, _ := bank.Pool("Водолаз")
	assert.Equal(t, "Разработчик", name)
}

func TestTechnicalPromptByLevel(t *testing.T) {
	assert.Equal(t, "Основные понятия в области SQL", TechnicalPrompt("Junior", "SQL"))
	assert.Equal(t, "Практическое применение SQL в проектах", TechnicalPrompt("Middle", "SQL"))
	assert.Equal(t, "Архитектурные решения и лучшие практики в SQL", TechnicalPrompt("Senior", "SQL"))
	assert.Equal(t, "Архитектурные решения и лучшие практики в SQL", TechnicalPrompt("Не определен", "SQL"))
}
