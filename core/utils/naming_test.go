package utils_test

import (
	"testing"

	"fridge-manager/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercases", "Apple", "apple"},
		{"TrimsWhitespace", "  banana  ", "banana"},
		{"CollapsesInnerSpaces", "hot   dog", "hot dog"},
		{"MixedCaseMultiWord", " Hot  Dog ", "hot dog"},
		{"Empty", "", ""},
		{"OnlySpaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeLabel(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "Apple", "apple"},
		{"Spaces", "Oat Milk", "oat-milk"},
		{"Punctuation", "Oat Milk (1L)", "oat-milk-1l"},
		{"LeadingTrailingJunk", "--Greek Yogurt!!", "greek-yogurt"},
		{"Empty", "", ""},
		{"OnlyPunctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.Slugify(tt.input))
		})
	}
}
