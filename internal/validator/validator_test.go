package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckdiff/internal/deck"
)

func validate(t *testing.T, content string) ValidationResults {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	results, err := NewValidator(path, deck.Options{}, "").Validate()
	require.NoError(t, err)
	return results
}

func TestValidateCleanList(t *testing.T) {
	results := validate(t, "// mono red\n4 Lightning Bolt (M11) 149\n2 Fire // Ice\nSIDEBOARD:\n1 Pyroblast\n")

	assert.True(t, results.Valid())
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	results := validate(t, "Forest\nx2 Island\n-1 Opt\nSIDEBOARD:\n1 Duress\nsideboard:\n")

	assert.False(t, results.Valid())
	assert.Equal(t, []string{
		"line 6: duplicate sideboard marker (first on line 4)",
		`line 1: expected "<quantity> <name>": "Forest"`,
		`line 2: quantity is not an integer: "x2 Island"`,
		`line 3: quantity is negative: "-1 Opt"`,
	}, results.Errors)
}

func TestValidateWarnings(t *testing.T) {
	results := validate(t, "0 Opt\n1 Fire//Ice\n1 Who // What // When // Where // Why\n1 Forest (NEO 293\n1 ,\n")

	assert.True(t, results.Valid())
	assert.Equal(t, []string{
		`line 1: quantity is zero, "Opt" adds no cards`,
		`line 2: double-faced name "Fire//Ice" does not split into front and back on " // "`,
		`line 3: double-faced name "Who // What // When // Where // Why" does not split into front and back on " // "`,
		`line 4: unclosed set annotation: "1 Forest (NEO 293"`,
		`line 5: card name is empty: "1 ,"`,
	}, results.Warnings)
}

func TestValidateEmptyList(t *testing.T) {
	results := validate(t, "// nothing here\n\n")

	assert.True(t, results.Valid())
	assert.Equal(t, []string{"deck list has no cards"}, results.Warnings)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.txt"), deck.Options{}, "").Validate()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
