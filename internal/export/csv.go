package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arcanaland/deckdiff/internal/card"
	"github.com/arcanaland/deckdiff/internal/reconcile"
)

// Header is the first row of every proxy sheet
var Header = []string{"Quantity", "Front", "Back"}

// quantity is written per row, each physical copy gets its own row
const quantity = "1"

// Options controls how double-faced names are split into columns
type Options struct {
	Split     string // defaults to card.DefaultSplit
	Separator string // defaults to card.DefaultSeparator
}

// WriteFile creates or truncates path and writes the proxy sheet to it
func WriteFile(path string, r *reconcile.Result, opts Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", cerr)
		}
	}()

	n, err := Write(file, r, opts)
	if err != nil {
		return err
	}

	slog.Debug("wrote proxy sheet", slog.String("path", path), slog.Int("rows", n))
	return nil
}

// Write writes the proxy sheet as CSV and returns the number of data rows
func Write(w io.Writer, r *reconcile.Result, opts Options) (int, error) {
	sw := &sheetWriter{csv: csv.NewWriter(w), opts: opts}

	if err := sw.csv.Write(Header); err != nil {
		return 0, fmt.Errorf("error writing header: %w", err)
	}

	uniqueA, uniqueB := r.A.UniqueSingle, r.B.UniqueSingle
	for i := 0; i < max(len(uniqueA), len(uniqueB)); i++ {
		sw.row(at(uniqueA, i), at(uniqueB, i))
	}

	for _, name := range r.SharedSingle {
		sw.row(name, name)
	}

	sw.doubles(r.SharedDouble)
	sw.doubles(r.A.UniqueDouble)
	sw.doubles(r.B.UniqueDouble)

	if r.IncludeSideboard {
		for _, name := range r.A.SideSingle {
			sw.row(name, "")
		}
		for _, name := range r.B.SideSingle {
			sw.row("", name)
		}
		sw.doubles(r.A.SideDouble)
		sw.doubles(r.B.SideDouble)
	}

	if sw.err != nil {
		return sw.rows, fmt.Errorf("error writing row %d: %w", sw.rows+1, sw.err)
	}

	sw.csv.Flush()
	if err := sw.csv.Error(); err != nil {
		return sw.rows, fmt.Errorf("error flushing output: %w", err)
	}

	return sw.rows, nil
}

// sheetWriter stops writing after the first error
type sheetWriter struct {
	csv  *csv.Writer
	opts Options
	rows int
	err  error
}

func (s *sheetWriter) row(front, back string) {
	if s.err != nil {
		return
	}
	if s.err = s.csv.Write([]string{quantity, front, back}); s.err == nil {
		s.rows++
	}
}

func (s *sheetWriter) doubles(names []string) {
	for _, name := range names {
		front, back := card.Split(name, s.opts.Split, s.opts.Separator)
		s.row(front, back)
	}
}

func at(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return ""
}
