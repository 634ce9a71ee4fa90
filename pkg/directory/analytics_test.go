package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	cs := sample()
	cs[0].Location = "Москва"
	cs[1].Location = "Москва"
	cs[2].Location = "Казань"
	cs = append(cs, Candidate{FullName: "Без позиции", Score: ptr(100.0)})

	a := Aggregate(cs)

	assert.Equal(t, 5, a.TotalCandidates)
	assert.Equal(t, 4, a.Analyzed)
	assert.Equal(t, 83.0, a.AverageScore)
	assert.Equal(t, 4, a.UniquePositions)
	assert.Equal(t, Count{Key: "Москва", Count: 2}, a.ByLocation[0])
	assert.Contains(t, a.ByLocation, Count{Key: "Не указано", Count: 2})
	assert.Contains(t, a.ByPosition, Count{Key: "Не определена", Count: 1})

	require.Len(t, a.ScoreHistogram, 10)
	assert.Equal(t, 2, a.ScoreHistogram[7].Count)
	assert.Equal(t, 1, a.ScoreHistogram[8].Count)
	assert.Equal(t, 1, a.ScoreHistogram[9].Count, "100 falls into the last bucket")
	assert.Len(t, a.TopLocations, 3)
}

func TestAggregateEmpty(t *testing.T) {
	a := Aggregate(nil)

	assert.Zero(t, a.TotalCandidates)
	assert.Zero(t, a.AverageScore)
	assert.Empty(t, a.ByPosition)
	assert.Len(t, a.ScoreHistogram, 10)
}
