package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and trims", input: "  Devon Witherspoon ", want: "devon witherspoon"},
		{name: "strips jr", input: "Mike Jones Jr.", want: "mike jones"},
		{name: "strips sr", input: "Ken Griffey Sr.", want: "ken griffey"},
		{name: "strips iii before ii", input: "O'Brien III", want: "obrien"},
		{name: "strips ii", input: "Robert Griffin II", want: "robert griffin"},
		{name: "strips curly apostrophe", input: "Ja’Marr Chase", want: "jamarr chase"},
		{name: "strips left curly apostrophe", input: "D‘Andre Swift", want: "dandre swift"},
		{name: "keeps backtick", input: "Jo`n Doe", want: "jo`n doe"},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "non-ascii letters untouched", input: "ÉMILE", want: "Émile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	assert.Equal(t, Normalize("mike jones"), Normalize("Mike Jones Jr."))
	assert.Equal(t, Normalize("obrien"), Normalize("O'Brien III"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, name := range []string{"Mike Jones Jr.", "O'Brien III", "Amon-Ra St. Brown"} {
		once := Normalize(name)
		assert.Equal(t, once, Normalize(once), name)
	}
}
