package rope

// ========== Single Character Operations ==========

// InsertChar inserts a single rune at the specified character position.
// Returns a new Rope, leaving the original unchanged.
func (r *Rope) InsertChar(pos int, ch rune) *Rope {
	return r.Insert(pos, []byte(string(ch)))
}

// DeleteChar removes a single character at the specified position.
// Returns a new Rope, leaving the original unchanged.
func (r *Rope) DeleteChar(pos int) *Rope {
	return r.Delete(pos, pos+1)
}

// ========== Character Replacement ==========

// ReplaceChar replaces a single character at the specified position.
// Returns a new Rope, leaving the original unchanged.
func (r *Rope) ReplaceChar(pos int, ch rune) *Rope {
	return r.Replace(pos, pos+1, []byte(string(ch)))
}

// SwapChar swaps the characters at pos1 and pos2.
// Returns a new Rope, leaving the original unchanged.
func (r *Rope) SwapChar(pos1, pos2 int) *Rope {
	if pos1 == pos2 {
		return r
	}
	ch1, err := r.CharAt(pos1)
	if err != nil {
		panic(err)
	}
	ch2, err := r.CharAt(pos2)
	if err != nil {
		panic(err)
	}
	return r.ReplaceChar(pos1, ch2).ReplaceChar(pos2, ch1)
}

// ========== Character Query ==========

// ContainsChar reports whether the rope contains ch.
func (r *Rope) ContainsChar(ch rune) bool {
	return r.IndexOfChar(ch) >= 0
}

// IndexOfChar returns the first character position of ch, or -1.
func (r *Rope) IndexOfChar(ch rune) int {
	it := r.Chars()
	pos := 0
	for !it.Done() {
		if it.Current() == ch {
			return pos
		}
		it.Next()
		pos++
	}
	return -1
}

// IndexOfCharFrom returns the first position of ch at or after pos, or -1.
func (r *Rope) IndexOfCharFrom(pos int, ch rune) int {
	for i := pos; i < r.LenChars(); i++ {
		rch, err := r.CharAt(i)
		if err != nil {
			return -1
		}
		if rch == ch {
			return i
		}
	}
	return -1
}

// LastIndexOfChar returns the last character position of ch, or -1.
func (r *Rope) LastIndexOfChar(ch rune) int {
	for i := r.LenChars() - 1; i >= 0; i-- {
		rch, _ := r.CharAt(i)
		if rch == ch {
			return i
		}
	}
	return -1
}

// CountChar counts the occurrences of ch in the rope.
func (r *Rope) CountChar(ch rune) int {
	count := 0
	for it := r.Chars(); !it.Done(); it.Next() {
		if it.Current() == ch {
			count++
		}
	}
	return count
}

// ========== Character Collection ==========

// CollectChars collects all characters into a rune slice.
func (r *Rope) CollectChars() []rune {
	runes := make([]rune, 0, r.LenChars())
	for it := r.Chars(); !it.Done(); it.Next() {
		runes = append(runes, it.Current())
	}
	return runes
}

// UniqueChars returns the distinct characters in the rope, in order of first appearance.
func (r *Rope) UniqueChars() []rune {
	seen := make(map[rune]bool)
	var unique []rune
	for it := r.Chars(); !it.Done(); it.Next() {
		ch := it.Current()
		if !seen[ch] {
			seen[ch] = true
			unique = append(unique, ch)
		}
	}
	return unique
}

// ========== Character Transformations ==========

// MapChars maps each character through fn, returning a new Rope.
func (r *Rope) MapChars(fn func(rune) rune) *Rope {
	var buf []byte
	for it := r.Chars(); !it.Done(); it.Next() {
		buf = append(buf, []byte(string(fn(it.Current())))...)
	}
	return FromBytes(r.traits, buf)
}

// FilterChars keeps only the characters for which fn returns true.
func (r *Rope) FilterChars(fn func(rune) bool) *Rope {
	var buf []byte
	for it := r.Chars(); !it.Done(); it.Next() {
		ch := it.Current()
		if fn(ch) {
			buf = append(buf, []byte(string(ch))...)
		}
	}
	return FromBytes(r.traits, buf)
}

// RemoveChars removes every occurrence of any rune in charsToRemove.
func (r *Rope) RemoveChars(charsToRemove ...rune) *Rope {
	removeSet := make(map[rune]bool, len(charsToRemove))
	for _, ch := range charsToRemove {
		removeSet[ch] = true
	}
	return r.FilterChars(func(ch rune) bool { return !removeSet[ch] })
}

// ReplaceAllChar replaces every occurrence of oldChar with newChar.
func (r *Rope) ReplaceAllChar(oldChar, newChar rune) *Rope {
	return r.MapChars(func(ch rune) rune {
		if ch == oldChar {
			return newChar
		}
		return ch
	})
}

// ReverseChars returns a new Rope with its characters in reverse order.
func (r *Rope) ReverseChars() *Rope {
	runes := r.CollectChars()
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return FromString(r.traits, string(runes))
}

// ========== Character Categories ==========

// IsWhitespace reports whether ch is whitespace.
func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// IsDigit reports whether ch is a decimal digit.
func IsDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// CountWhitespace counts whitespace characters in the rope.
func (r *Rope) CountWhitespace() int { return r.countWhere(IsWhitespace) }

// CountDigits counts digit characters in the rope.
func (r *Rope) CountDigits() int { return r.countWhere(IsDigit) }

// CountLetters counts letter characters in the rope.
func (r *Rope) CountLetters() int { return r.countWhere(IsLetter) }

func (r *Rope) countWhere(fn func(rune) bool) int {
	count := 0
	for it := r.Chars(); !it.Done(); it.Next() {
		if fn(it.Current()) {
			count++
		}
	}
	return count
}

// TrimLeftChar removes leading characters for which fn returns true.
func (r *Rope) TrimLeftChar(fn func(rune) bool) *Rope {
	it := r.Chars()
	start := 0
	for !it.Done() && fn(it.Current()) {
		start++
		it.Next()
	}
	if start == 0 {
		return r
	}
	_, rhs := r.Split(start)
	return rhs
}

// TrimRightChar removes trailing characters for which fn returns true.
func (r *Rope) TrimRightChar(fn func(rune) bool) *Rope {
	end := r.LenChars()
	for end > 0 {
		ch, _ := r.CharAt(end - 1)
		if !fn(ch) {
			break
		}
		end--
	}
	if end == r.LenChars() {
		return r
	}
	lhs, _ := r.Split(end)
	return lhs
}

// TrimChar removes leading and trailing characters for which fn returns true.
func (r *Rope) TrimChar(fn func(rune) bool) *Rope {
	return r.TrimLeftChar(fn).TrimRightChar(fn)
}

// TrimLeftWhitespace removes leading whitespace.
func (r *Rope) TrimLeftWhitespace() *Rope { return r.TrimLeftChar(IsWhitespace) }

// TrimRightWhitespace removes trailing whitespace.
func (r *Rope) TrimRightWhitespace() *Rope { return r.TrimRightChar(IsWhitespace) }

// TrimWhitespace removes leading and trailing whitespace.
func (r *Rope) TrimWhitespace() *Rope { return r.TrimChar(IsWhitespace) }
