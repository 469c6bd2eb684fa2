package rope

import (
	"strings"
)

// Line operations provide editor-friendly functionality for working with lines.
// All line numbers are 0-indexed (first line is line 0).
//
// Line, LineStart, LineEnd, LineCount, LineAtChar and the helpers built
// on them treat only "\n" as a line ending: in "\r\n" text the "\r"
// stays part of the line's own text, and a lone "\r" does not end a
// line. LineEnding, NormalizeLineEndings and the LinesIterator-based
// helpers recognise "\r\n" and "\r" as well.

// Line returns the text of the specified line, without its line ending.
func (r *Rope) Line(lineNum int) string {
	start := r.LineStart(lineNum)
	end := r.LineEnd(lineNum)
	s, err := r.Slice(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// LineWithEnding returns the text of the specified line, including its line ending.
func (r *Rope) LineWithEnding(lineNum int) string {
	start := r.LineStart(lineNum)
	end := start + r.LineWithEndingLength(lineNum)
	s, err := r.Slice(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// LineCount returns the total number of lines in the rope. An empty
// rope has 0 lines; any other rope has at least 1.
func (r *Rope) LineCount() int {
	if r.LenChars() == 0 {
		return 0
	}
	content := r.String()
	count := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		return count + 1
	}
	return count
}

// LineStart returns the character position where lineNum starts.
func (r *Rope) LineStart(lineNum int) int {
	if lineNum < 0 || lineNum >= r.LineCount() {
		panic("rope: line number out of bounds")
	}
	if lineNum == 0 {
		return 0
	}

	currentLine := 0
	pos := 0
	for it := r.Chars(); !it.Done(); it.Next() {
		pos++
		if it.Current() == '\n' {
			currentLine++
			if currentLine == lineNum {
				return pos
			}
		}
	}
	return r.LenChars()
}

// LineEnd returns the character position where lineNum ends (exclusive
// of its line ending).
func (r *Rope) LineEnd(lineNum int) int {
	start := r.LineStart(lineNum)
	for i := start; i < r.LenChars(); i++ {
		ch, err := r.CharAt(i)
		if err != nil {
			panic(err)
		}
		if ch == '\n' {
			return i
		}
	}
	return r.LenChars()
}

// LineLength returns the length of lineNum in characters, excluding its line ending.
func (r *Rope) LineLength(lineNum int) int {
	return r.LineEnd(lineNum) - r.LineStart(lineNum)
}

// LineWithEndingLength returns the length of lineNum including its line ending.
func (r *Rope) LineWithEndingLength(lineNum int) int {
	start := r.LineStart(lineNum)
	end := start + r.LineLength(lineNum)
	if end < r.LenChars() {
		if ch, _ := r.CharAt(end); ch == '\n' {
			return (end - start) + 1
		}
	}
	return end - start
}

// InsertLine inserts text at the beginning of lineNum.
func (r *Rope) InsertLine(lineNum int, text string) *Rope {
	return r.Insert(r.LineStart(lineNum), []byte(text))
}

// DeleteLine removes lineNum, including its trailing newline if present.
func (r *Rope) DeleteLine(lineNum int) *Rope {
	start := r.LineStart(lineNum)
	end := r.LineEnd(lineNum)
	if end < r.LenChars() {
		if ch, _ := r.CharAt(end); ch == '\n' {
			end++
		}
	}
	return r.Delete(start, end)
}

// ReplaceLine replaces the content of lineNum with text.
func (r *Rope) ReplaceLine(lineNum int, text string) *Rope {
	start := r.LineStart(lineNum)
	end := start + r.LineLength(lineNum)
	return r.Replace(start, end, []byte(text))
}

// AppendLine appends a new line to the end of the rope.
func (r *Rope) AppendLine(text string) *Rope {
	if r.LenChars() == 0 {
		return r.Insert(0, []byte(text))
	}
	return r.Insert(r.LenChars(), []byte("\n"+text))
}

// PrependLine prepends a new line at the beginning of the rope.
func (r *Rope) PrependLine(text string) *Rope {
	if r.LenChars() == 0 {
		return r.Insert(0, []byte(text))
	}
	return r.Insert(0, []byte(text+"\n"))
}

// ========== Line-based Editing Operations ==========

// LineAtChar returns the line number containing character position pos.
func (r *Rope) LineAtChar(pos int) int {
	if pos < 0 || pos > r.LenChars() {
		panic("rope: character position out of bounds")
	}
	if pos == 0 {
		return 0
	}

	lineNum := 0
	i := 0
	for it := r.Chars(); !it.Done() && i < pos; it.Next() {
		if it.Current() == '\n' {
			lineNum++
		}
		i++
	}
	return lineNum
}

// ColumnAtChar returns the 0-indexed column within its line for character position pos.
func (r *Rope) ColumnAtChar(pos int) int {
	if pos < 0 || pos > r.LenChars() {
		panic("rope: character position out of bounds")
	}
	lineStart := r.LineStart(r.LineAtChar(pos))
	return pos - lineStart
}

// PositionAtLineCol returns the character position for (lineNum, colNum).
func (r *Rope) PositionAtLineCol(lineNum, colNum int) int {
	lineStart := r.LineStart(lineNum)
	lineEnd := r.LineEnd(lineNum)
	if colNum < 0 || colNum > (lineEnd-lineStart) {
		panic("rope: column number out of bounds")
	}
	return lineStart + colNum
}

// InsertAtLineCol inserts text at (lineNum, colNum).
func (r *Rope) InsertAtLineCol(lineNum, colNum int, text string) *Rope {
	return r.Insert(r.PositionAtLineCol(lineNum, colNum), []byte(text))
}

// DeleteAtLineCol deletes characters from (lineNum, colNum) to (lineNum2, colNum2).
func (r *Rope) DeleteAtLineCol(lineNum, colNum, lineNum2, colNum2 int) *Rope {
	start := r.PositionAtLineCol(lineNum, colNum)
	end := r.PositionAtLineCol(lineNum2, colNum2)
	return r.Delete(start, end)
}

// ========== Line Information ==========

// HasTrailingNewline reports whether the rope ends with a newline character.
func (r *Rope) HasTrailingNewline() bool {
	if r.LenChars() == 0 {
		return false
	}
	ch, _ := r.CharAt(r.LenChars() - 1)
	return ch == '\n'
}

// LineEnding returns the line ending style used in the rope: "\n",
// "\r\n", "\r", or "" if the rope has no line endings.
func (r *Rope) LineEnding() string {
	content := r.String()
	switch {
	case strings.Contains(content, "\r\n"):
		return "\r\n"
	case strings.Contains(content, "\n"):
		return "\n"
	case strings.Contains(content, "\r"):
		return "\r"
	default:
		return ""
	}
}

// NormalizeLineEndings converts all line endings to style, which must
// be "\n", "\r\n", or "\r".
func (r *Rope) NormalizeLineEndings(style string) *Rope {
	if style != "\n" && style != "\r\n" && style != "\r" {
		panic(&ErrInvalidInput{Parameter: "style", Value: style, Reason: `must be \n, \r\n, or \r`})
	}

	content := r.String()
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if style != "\n" {
		content = strings.ReplaceAll(content, "\n", style)
	}
	return FromString(r.traits, content)
}

// TrimTrailingNewlines removes all trailing newline characters.
func (r *Rope) TrimTrailingNewlines() *Rope {
	return FromString(r.traits, strings.TrimRight(r.String(), "\n\r"))
}

// TrimLeadingNewlines removes all leading newline characters.
func (r *Rope) TrimLeadingNewlines() *Rope {
	return FromString(r.traits, strings.TrimLeft(r.String(), "\n\r"))
}

// JoinLines removes every line ending, concatenating all lines into one.
func (r *Rope) JoinLines() *Rope {
	joined := strings.ReplaceAll(r.String(), "\n", "")
	joined = strings.ReplaceAll(joined, "\r", "")
	return FromString(r.traits, joined)
}

// SplitLines splits the rope into lines, without line endings.
func (r *Rope) SplitLines() []string {
	lines, _ := r.LinesIterator().ToSlice()
	return lines
}

// Lines returns every line of the rope, each including its line ending
// except possibly the last.
func (r *Rope) Lines() []string {
	count := r.LineCount()
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = r.LineWithEnding(i)
	}
	return out
}

// IndentLines prepends prefix to every line.
func (r *Rope) IndentLines(prefix string) *Rope {
	b := NewBuilderWithTraits(r.traits)
	it := r.LinesIterator()
	for it.Next() {
		b.Append(prefix)
		line, err := it.CurrentWithEnding()
		if err != nil {
			panic(err)
		}
		b.Append(line)
	}
	return b.Build()
}

// DedentLines removes the common leading whitespace shared by every non-blank line.
func (r *Rope) DedentLines() *Rope {
	lines := r.SplitLines()
	if len(lines) == 0 {
		return r
	}

	minIndent := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		indent := leadingWhitespaceCount(line)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return r
	}

	b := NewBuilderWithTraits(r.traits)
	it := r.LinesIterator()
	for it.Next() {
		line, err := it.CurrentWithEnding()
		if err != nil {
			panic(err)
		}
		if it.Current() != "" {
			line = line[minIndent:]
		}
		b.Append(line)
	}
	return b.Build()
}

func leadingWhitespaceCount(s string) int {
	count := 0
	for _, ch := range s {
		if ch == ' ' || ch == '\t' {
			count++
		} else {
			break
		}
	}
	return count
}

// ========== Paragraph Operations ==========

// ParagraphCount returns the number of paragraphs, separated by blank lines.
func (r *Rope) ParagraphCount() int {
	content := strings.Trim(r.String(), "\n\r")
	if content == "" {
		return 0
	}
	return len(strings.Split(content, "\n\n"))
}

// Paragraph returns the text of the specified paragraph.
func (r *Rope) Paragraph(paraNum int) string {
	content := strings.Trim(r.String(), "\n\r")
	paragraphs := strings.Split(content, "\n\n")
	if paraNum < 0 || paraNum >= len(paragraphs) {
		panic("rope: paragraph number out of bounds")
	}
	return paragraphs[paraNum]
}
