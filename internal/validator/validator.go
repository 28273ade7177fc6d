package validator

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/deckdiff/internal/card"
	"github.com/arcanaland/deckdiff/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	ListPath string
	Options  deck.Options
	Split    string
	Results  ValidationResults

	lines []string
}

func NewValidator(listPath string, opts deck.Options, split string) *Validator {
	if split == "" {
		split = card.DefaultSplit
	}
	return &Validator{
		ListPath: listPath,
		Options:  opts,
		Split:    split,
		Results:  ValidationResults{},
	}
}

// Validate checks every line of the deck list and collects all problems.
// The returned error is only set when the file cannot be read.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.readLines(); err != nil {
		return v.Results, err
	}

	v.validateSideboardMarkers()
	v.validateCardLines()

	return v.Results, nil
}

func (v *Validator) readLines() error {
	f, err := os.Open(v.ListPath)
	if err != nil {
		return fmt.Errorf("error opening deck list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(v.lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		v.lines = append(v.lines, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading deck list: %w", err)
	}
	return nil
}

func (v *Validator) errorf(lineNo int, format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: ", lineNo)+fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(lineNo int, format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("line %d: ", lineNo)+fmt.Sprintf(format, args...))
}

// validateSideboardMarkers reports every marker after the first
func (v *Validator) validateSideboardMarkers() {
	first := 0
	for i, line := range v.lines {
		if !deck.IsSideboardMarker(line, v.Options.SideboardMarker) {
			continue
		}
		if first == 0 {
			first = i + 1
			continue
		}
		v.errorf(i+1, "duplicate sideboard marker (first on line %d)", first)
	}
}

// validateCardLines checks quantities, annotations and face names
func (v *Validator) validateCardLines() {
	cards := 0
	for i, line := range v.lines {
		lineNo := i + 1
		if deck.IsSideboardMarker(line, v.Options.SideboardMarker) || deck.IsSkippable(line, v.Options.CommentPrefix) {
			continue
		}

		entry, err := deck.ParseLine(line, v.Options.Separator)
		switch {
		case errors.Is(err, deck.ErrMissingName):
			v.errorf(lineNo, "expected \"<quantity> <name>\": %q", line)
			continue
		case errors.Is(err, deck.ErrInvalidQuantity):
			v.errorf(lineNo, "quantity is not an integer: %q", line)
			continue
		case errors.Is(err, deck.ErrNegativeQuantity):
			v.errorf(lineNo, "quantity is negative: %q", line)
			continue
		case err != nil:
			v.errorf(lineNo, "%v", err)
			continue
		}

		cards += entry.Quantity
		if entry.Quantity == 0 {
			v.warnf(lineNo, "quantity is zero, %q adds no cards", entry.Card.Name)
		}

		_, rest, _ := strings.Cut(line, " ")
		if at := strings.Index(rest, " ("); at >= 0 && !strings.Contains(rest[at:], ")") {
			v.warnf(lineNo, "unclosed set annotation: %q", line)
		}

		if strings.TrimSpace(entry.Card.Name) == "" {
			v.warnf(lineNo, "card name is empty: %q", line)
			continue
		}

		if entry.Card.Faces == 2 {
			if parts := strings.Split(entry.Card.Name, v.Split); len(parts) != 2 {
				v.warnf(lineNo, "double-faced name %q does not split into front and back on %q", entry.Card.Name, v.Split)
			}
		}
	}

	if cards == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "deck list has no cards")
	}
}
