package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckdiff/internal/deck"
	"github.com/arcanaland/deckdiff/internal/reconcile"
)

func reconcileLists(t *testing.T, listA, listB string, includeSideboard bool) *reconcile.Result {
	t.Helper()
	opts := deck.Options{IncludeSideboard: includeSideboard}
	a, err := deck.Parse(strings.NewReader(listA), opts)
	require.NoError(t, err)
	b, err := deck.Parse(strings.NewReader(listB), opts)
	require.NoError(t, err)
	return reconcile.Reconcile(a, b, includeSideboard)
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteRowOrder(t *testing.T) {
	listA := "2 Forest\n1 Opt\n1 Fire // Ice\n1 Delver of Secrets // Insectile Aberration\nSIDEBOARD:\n1 Duress\n1 Bala Ged Recovery // Bala Ged Sanctuary\n"
	listB := "3 Forest\n2 Island, Again\n1 Fire // Ice\n1 Brazen Borrower // Petty Theft\nSIDEBOARD:\n2 Pyroblast\n"

	r := reconcileLists(t, listA, listB, true)

	var buf bytes.Buffer
	n, err := Write(&buf, r, Options{})
	require.NoError(t, err)

	want := [][]string{
		{"Quantity", "Front", "Back"},
		{"1", "Opt", "Forest"},
		{"1", "", "Island Again"},
		{"1", "", "Island Again"},
		{"1", "Forest", "Forest"},
		{"1", "Forest", "Forest"},
		{"1", "Fire", "Ice"},
		{"1", "Delver of Secrets", "Insectile Aberration"},
		{"1", "Brazen Borrower", "Petty Theft"},
		{"1", "Duress", ""},
		{"1", "", "Pyroblast"},
		{"1", "", "Pyroblast"},
		{"1", "Bala Ged Recovery", "Bala Ged Sanctuary"},
	}
	assert.Equal(t, want, readRows(t, buf.Bytes()))
	assert.Equal(t, len(want)-1, n)
	assert.Equal(t, r.Rows(), n)
}

func TestWriteIdenticalDecks(t *testing.T) {
	list := "2 Lightning Bolt\n1 Delver of Secrets // Insectile Aberration\n"
	r := reconcileLists(t, list, list, false)

	var buf bytes.Buffer
	_, err := Write(&buf, r, Options{})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Quantity", "Front", "Back"},
		{"1", "Lightning Bolt", "Lightning Bolt"},
		{"1", "Lightning Bolt", "Lightning Bolt"},
		{"1", "Delver of Secrets", "Insectile Aberration"},
	}, readRows(t, buf.Bytes()))
}

func TestWriteSkipsSideboardWhenExcluded(t *testing.T) {
	r := reconcileLists(t, "1 Forest\nSIDEBOARD:\n1 Duress\n", "1 Forest\n", false)

	var buf bytes.Buffer
	n, err := Write(&buf, r, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotContains(t, buf.String(), "Duress")
}

func TestWriteQuotesNames(t *testing.T) {
	r := &reconcile.Result{SharedSingle: []string{`"Ach! Hans, Run!"`}}

	var buf bytes.Buffer
	_, err := Write(&buf, r, Options{})
	require.NoError(t, err)

	rows := readRows(t, buf.Bytes())
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", `"Ach! Hans, Run!"`, `"Ach! Hans, Run!"`}, rows[1])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the output\n"), 0644))

	r := reconcileLists(t, "1 Forest\n", "1 Island\n", false)
	require.NoError(t, WriteFile(path, r, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Quantity,Front,Back\n1,Forest,Island\n", string(data))
}

func TestWriteFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := WriteFile(path, &reconcile.Result{}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
