package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDString(t *testing.T) {
	assert.Equal(t, "(bank1, (3, 7))", ID{Bank: "bank1", I: 3, J: 7}.String())
	assert.Equal(t, "(b, (0, 0))", Format(ID{Bank: "b"}))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    ID
		wantErr bool
	}{
		{"canonical", []string{"(bank1,", "(3,", "7))"}, ID{"bank1", 3, 7}, false},
		{"list form", []string{"[bank1,", "3,", "7]"}, ID{"bank1", 3, 7}, false},
		{"quoted list", []string{"['bank2',", "0,", "12]"}, ID{"bank2", 0, 12}, false},
		{"double quotes", []string{`("bank3",`, "(1,", "2))"}, ID{"bank3", 1, 2}, false},
		{"bare", []string{"b", "4", "5"}, ID{"b", 4, 5}, false},
		{"negative", []string{"b", "-1", "5"}, ID{"b", -1, 5}, false},
		{"too few", []string{"b", "1"}, ID{}, true},
		{"too many", []string{"b", "1", "2", "3"}, ID{}, true},
		{"bad slow", []string{"b", "x", "2"}, ID{}, true},
		{"bad fast", []string{"b", "1", "2.5"}, ID{}, true},
		{"empty bank", []string{"(,", "1,", "2)"}, ID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseString(t *testing.T) {
	id, err := ParseString("  (bank1,  (3,\t7))  ")
	require.NoError(t, err)
	assert.Equal(t, ID{Bank: "bank1", I: 3, J: 7}, id)

	_, err = ParseString("(bank1, (3))")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseFormatRoundTrip(t *testing.T) {
	ids := []ID{
		{Bank: "bank1", I: 3, J: 7},
		{Bank: "x", I: 0, J: 0},
		{Bank: "bank_42", I: 255, J: 1023},
		{Bank: "b", I: -2, J: 9},
	}
	for _, id := range ids {
		t.Run(id.String(), func(t *testing.T) {
			got, err := ParseString(Format(id))
			require.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}
}
