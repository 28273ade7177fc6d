package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		rest string
		want string
	}{
		{"Forest", "Forest"},
		{"Forest (NEO) 293", "Forest"},
		{"Kolaghan, the Storm's Fury (DTK) 218", "Kolaghan the Storm's Fury"},
		{"Delver of Secrets // Insectile Aberration (ISD) 51", "Delver of Secrets // Insectile Aberration"},
		{"Borrowing 100,000 Arrows", "Borrowing 100000 Arrows"},
		{"Card (A) (B)", "Card"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalName(tt.rest), "CanonicalName(%q)", tt.rest)
	}
}

func TestNewClassifiesFaces(t *testing.T) {
	assert.Equal(t, Card{Name: "Forest", Faces: 1}, New("Forest", DefaultSeparator))
	assert.Equal(t, Card{Name: "Delver // Insectile", Faces: 2}, New("Delver // Insectile", DefaultSeparator))
	assert.Equal(t, 2, New("Fire//Ice", "").Faces)
	assert.Equal(t, 1, New("Fire // Ice", "|").Faces)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		wantFront string
		wantBack  string
	}{
		{"Delver of Secrets // Insectile Aberration", "Delver of Secrets", "Insectile Aberration"},
		{"Fire//Ice", "Fire", "Ice"},
		{"Fire //Ice", "Fire", "Ice"},
		{"Forest", "Forest", ""},
		{"A // B // C", "A", "B // C"},
	}

	for _, tt := range tests {
		front, back := Split(tt.name, DefaultSplit, DefaultSeparator)
		assert.Equal(t, tt.wantFront, front, "front of %q", tt.name)
		assert.Equal(t, tt.wantBack, back, "back of %q", tt.name)
	}
}
