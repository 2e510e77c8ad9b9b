package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_BasicASCII(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Midnight Navy Suit", "midnight-navy-suit"},
		{"classic white dress shirt", "classic-white-dress-shirt"},
		{"Blazer", "blazer"},
		{"ALL CAPS TUXEDO", "all-caps-tuxedo"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_AccentedCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Piqué Polo", "pique-polo"},
		{"Crêpe de Chine Tie", "crepe-de-chine-tie"},
		{"Suède Loafers", "suede-loafers"},
		{"Façonné Pocket Square", "faconne-pocket-square"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_SpecialCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Black Tie!!!", "black-tie"},
		{"shirt & tie set", "shirt-tie-set"},
		{"Suit (Slim Fit)", "suit-slim-fit"},
		{"  Trimmed   Everywhere  ", "trimmed-everywhere"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_NoUsableCharacters(t *testing.T) {
	assert.Equal(t, "", Generate(""))
	assert.Equal(t, "", Generate("!!!"))
	assert.Equal(t, "", Generate("   "))
}
