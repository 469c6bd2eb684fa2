package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsSplitsOnWhitespaceAndPunctuation(t *testing.T) {
	r := FromString(nil, "the cat, sat.")
	words := r.Words()

	var texts []string
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	assert.Contains(t, texts, "the")
	assert.Contains(t, texts, "cat")
	assert.Contains(t, texts, ",")
	assert.Contains(t, texts, "sat")
	assert.Contains(t, texts, ".")
}

func TestWordsReportsCorrectCharOffsets(t *testing.T) {
	r := FromString(nil, "ab cd")
	words := r.Words()
	offsetOf := func(text string) int {
		for _, w := range words {
			if w.Text == text {
				return w.CharIdx
			}
		}
		t.Fatalf("segment %q not found", text)
		return -1
	}
	assert.Equal(t, 0, offsetOf("ab"))
	assert.Equal(t, 3, offsetOf("cd"))
}

func TestWordCountIgnoresPunctuationOnlySegments(t *testing.T) {
	r := FromString(nil, "...")
	assert.Equal(t, 0, r.WordCount())
}

func TestWordCountOnMixedScriptText(t *testing.T) {
	r := FromString(nil, "hello 世界, 123!")
	count := r.WordCount()
	assert.GreaterOrEqual(t, count, 3)
}

func TestWordsOnEmptyRopeIsEmpty(t *testing.T) {
	r := FromString(nil, "")
	assert.Empty(t, r.Words())
}
