package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldAndContainsAny(t *testing.T) {
	folded := Fold("ОПЫТ РАБОТЫ: Senior Python Developer")

	assert.True(t, ContainsAny(folded, []string{"опыт работы"}))
	assert.True(t, ContainsAny(folded, []string{"missing", "senior"}))
	assert.False(t, ContainsAny(folded, []string{"образование", ""}))
}

func TestLengthCountsRunes(t *testing.T) {
	assert.Equal(t, 6, Length("навыки"))
	assert.Equal(t, 6, Length("skills"))
}

func TestSentenceCount(t *testing.T) {
	assert.Equal(t, 0, SentenceCount("   "))
	assert.Equal(t, 1, SentenceCount("one sentence without dot"))
	assert.Equal(t, 2, SentenceCount("First one. Second one!"))
	assert.Equal(t, 3, SentenceCount("First... Second?! Third"))
}

func TestTokens(t *testing.T) {
	tokens := Tokens("Как вы организуете процесс разработки?", 4)

	assert.Contains(t, tokens, "организуете")
	assert.Contains(t, tokens, "разработки")
	assert.NotContains(t, tokens, "вы")
}
