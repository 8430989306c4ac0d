package pixel

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies one detector pixel: a bank key plus a 2-D position within
// the bank. I is the slow (row) index and J the fast (column) index.
type ID struct {
	Bank string
	I    int
	J    int
}

// String returns the canonical form "(bank, (i, j))".
func (id ID) String() string {
	return fmt.Sprintf("(%s, (%d, %d))", id.Bank, id.I, id.J)
}

// Format is the package-level spelling of ID.String.
func Format(id ID) string {
	return id.String()
}

// decoration is stripped from every token before parsing.
const decoration = "()[],'\""

func stripToken(tok string) string {
	return strings.Trim(strings.TrimSpace(tok), decoration)
}

// Parse builds an ID from exactly three tokens: bank, i and j.
// Tokens may carry residual punctuation from either the canonical form
// "(bank, (i, j))" or a list form "[bank, i, j]".
//
// Examples:
//   - []string{"(bank1,", "(3,", "7))"} -> ID{"bank1", 3, 7}
//   - []string{"['bank1',", "3,", "7]"} -> ID{"bank1", 3, 7}
func Parse(tokens []string) (ID, error) {
	if len(tokens) != 3 {
		return ID{}, fmt.Errorf("%w: expected 3 tokens, got %d", ErrFormat, len(tokens))
	}

	bank := stripToken(tokens[0])
	if bank == "" {
		return ID{}, fmt.Errorf("%w: empty bank key", ErrFormat)
	}

	i, err := strconv.Atoi(stripToken(tokens[1]))
	if err != nil {
		return ID{}, fmt.Errorf("%w: slow index %q: %v", ErrFormat, tokens[1], err)
	}
	j, err := strconv.Atoi(stripToken(tokens[2]))
	if err != nil {
		return ID{}, fmt.Errorf("%w: fast index %q: %v", ErrFormat, tokens[2], err)
	}

	return ID{Bank: bank, I: i, J: j}, nil
}

// ParseString splits s on whitespace and parses the resulting tokens.
func ParseString(s string) (ID, error) {
	return Parse(strings.Fields(s))
}
