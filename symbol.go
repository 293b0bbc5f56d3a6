package huffman

import (
	"fmt"
	"strconv"
)

// Symbol is the constraint satisfied by symbol types.  Symbols are only ever
// compared for equality; no ordering or text semantics are assumed.
type Symbol interface {
	comparable
}

// formatSymbol renders a symbol for debugging dumps.  Runes and strings are
// quoted so that whitespace symbols stay visible.
func formatSymbol[S Symbol](symbol S) string {
	switch v := any(symbol).(type) {
	case rune:
		return strconv.QuoteRune(v)
	case byte:
		return strconv.QuoteRuneToASCII(rune(v))
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatKey[S Symbol](key []S) string {
	if runes, ok := any(key).([]rune); ok {
		return strconv.Quote(string(runes))
	}
	return fmt.Sprintf("%v", key)
}
