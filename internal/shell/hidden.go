package shell

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// HiddenKind classifies a character that makes the displayed command differ
// from what the shell will run.
type HiddenKind string

const (
	HiddenZeroWidth   HiddenKind = "zero-width"
	HiddenBidi        HiddenKind = "bidi-override"
	HiddenTag         HiddenKind = "tag-char"
	HiddenControl     HiddenKind = "control-char"
	HiddenInvalidUTF8 HiddenKind = "invalid-utf8"
	HiddenHomoglyph   HiddenKind = "homoglyph"
)

// Hidden is one offending character.
type Hidden struct {
	Kind      HiddenKind
	Offset    int // byte offset in the command
	Rune      rune
	LooksLike rune // set for homoglyphs
}

func (h Hidden) String() string {
	switch h.Kind {
	case HiddenInvalidUTF8:
		return fmt.Sprintf("invalid UTF-8 at byte %d", h.Offset)
	case HiddenHomoglyph:
		return fmt.Sprintf("U+%04X looks like '%c' at byte %d", h.Rune, h.LooksLike, h.Offset)
	default:
		return fmt.Sprintf("%s character U+%04X at byte %d", h.Kind, h.Rune, h.Offset)
	}
}

// FindHidden reports invisible, direction-changing and control characters
// anywhere in command. Outside quotes it also reports fullwidth ASCII forms,
// and Cyrillic or Greek look-alikes that share a run of letters with ASCII
// letters (`ls -аl`, `сat`). Words written entirely in another script, such
// as `отчёт.txt`, are left alone.
func FindHidden(command string) []Hidden {
	var (
		found   []Hidden
		quote   rune
		escaped bool

		// current run of unquoted letters
		pending  []Hidden
		runASCII bool
	)

	endRun := func() {
		if runASCII {
			found = append(found, pending...)
		}
		pending = pending[:0]
		runASCII = false
	}

	for i := 0; i < len(command); {
		r, size := utf8.DecodeRuneInString(command[i:])
		if r == utf8.RuneError && size == 1 {
			endRun()
			found = append(found, Hidden{Kind: HiddenInvalidUTF8, Offset: i, Rune: rune(command[i])})
			i++
			continue
		}

		if quote != 0 || !unicode.IsLetter(r) {
			endRun()
		}

		if kind, ok := invisibleKind(r); ok {
			found = append(found, Hidden{Kind: kind, Offset: i, Rune: r})
		} else if quote == 0 {
			if latin, ok := fullwidth(r); ok {
				found = append(found, Hidden{Kind: HiddenHomoglyph, Offset: i, Rune: r, LooksLike: latin})
			} else if unicode.IsLetter(r) {
				if r < utf8.RuneSelf {
					runASCII = true
				} else if latin, ok := lookalike(r); ok {
					pending = append(pending, Hidden{Kind: HiddenHomoglyph, Offset: i, Rune: r, LooksLike: latin})
				}
			}
		}

		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
		case r == quote:
			quote = 0
		}
		i += size
	}
	endRun()
	return found
}

func invisibleKind(r rune) (HiddenKind, bool) {
	switch {
	case isZeroWidth(r):
		return HiddenZeroWidth, true
	case isBidiOverride(r):
		return HiddenBidi, true
	case r >= 0xE0001 && r <= 0xE007F:
		return HiddenTag, true
	case isUnsafeControl(r):
		return HiddenControl, true
	}
	return "", false
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u2060', '\u180E', '\u200E', '\u200F':
		return true
	}
	return false
}

func isBidiOverride(r rune) bool {
	return (r >= '\u202A' && r <= '\u202E') || (r >= '\u2066' && r <= '\u2069')
}

// isUnsafeControl allows tab, newline and carriage return.
func isUnsafeControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return r <= 0x1F || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

func lookalike(r rune) (rune, bool) {
	if unicode.Is(unicode.Cyrillic, r) {
		latin, ok := cyrillicLookalikes[r]
		return latin, ok
	}
	if unicode.Is(unicode.Greek, r) {
		latin, ok := greekLookalikes[r]
		return latin, ok
	}
	return 0, false
}

// fullwidth folds the Fullwidth Forms block (U+FF01-U+FF5E) to ASCII.
// Other compatibility folds, such as superscripts and ordinals, are not
// look-alikes of shell syntax.
func fullwidth(r rune) (rune, bool) {
	if r < 0xFF01 || r > 0xFF5E {
		return 0, false
	}
	folded := norm.NFKC.String(string(r))
	if len(folded) != 1 || folded[0] >= utf8.RuneSelf {
		return 0, false
	}
	return rune(folded[0]), true
}

var cyrillicLookalikes = map[rune]rune{
	'а': 'a', 'А': 'A', 'В': 'B', 'с': 'c', 'С': 'C', 'е': 'e', 'Е': 'E',
	'Н': 'H', 'і': 'i', 'І': 'I', 'К': 'K', 'М': 'M', 'о': 'o', 'О': 'O',
	'р': 'p', 'Р': 'P', 'Т': 'T', 'м': 'm', 'х': 'x', 'Х': 'X', 'у': 'y', 'У': 'Y',
}

var greekLookalikes = map[rune]rune{
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Η': 'H', 'Ι': 'I', 'Κ': 'K', 'Μ': 'M',
	'Ν': 'N', 'Ο': 'O', 'ο': 'o', 'Ρ': 'P', 'Τ': 'T', 'Χ': 'X', 'Υ': 'Y',
	'Ζ': 'Z',
}
