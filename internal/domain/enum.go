package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// enumNames maps the values of an int-backed enum to their text forms.
// Index i holds the canonical name of value i.
type enumNames []string

func (n enumNames) name(i int) string {
	if i < 0 || i >= len(n) {
		return fmt.Sprintf("invalid(%d)", i)
	}
	return n[i]
}

func (n enumNames) valid(i int) bool {
	return i >= 0 && i < len(n)
}

// lookup finds the value whose normalized name equals the normalized input.
// Extra aliases are tried after the canonical names.
func (n enumNames) lookup(s string, aliases map[string]int) (int, bool) {
	key := normalizeName(s)
	if key == "" {
		return 0, false
	}
	for i, name := range n {
		if normalizeName(name) == key {
			return i, true
		}
	}
	if i, ok := aliases[key]; ok {
		return i, true
	}
	return 0, false
}

func (n enumNames) marshal(kind string, i int) ([]byte, error) {
	if !n.valid(i) {
		return nil, fmt.Errorf("%w: %s %d", ErrConfig, kind, i)
	}
	return []byte(n[i]), nil
}

// normalizeName lowercases s and drops everything but letters and digits, so
// "Dwarf weed", "dwarf_weed" and "dwarf-weed" compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
