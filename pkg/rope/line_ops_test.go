package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_GetLine(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	r := FromString(nil, text)

	lines := r.Lines()
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "Line 1\n", lines[0])
	assert.Equal(t, "Line 2\n", lines[1])
	assert.Equal(t, "Line 3", lines[2])
}

func TestRange_LineAt(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	r := FromString(nil, text)

	assert.Equal(t, "Line 1", r.Line(0))
	assert.Equal(t, "Line 2", r.Line(1))
	assert.Equal(t, "Line 3", r.Line(2))
}

func TestLineInfo_LineAtChar(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	r := FromString(nil, text)

	assert.Equal(t, 0, r.LineAtChar(0))
	assert.Equal(t, 0, r.LineAtChar(4))
	assert.Equal(t, 0, r.LineAtChar(5))
	assert.Equal(t, 1, r.LineAtChar(7))
	assert.Equal(t, 1, r.LineAtChar(12))
	assert.Equal(t, 2, r.LineAtChar(14))
}
