package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/arcanaland/deckdiff/internal/card"
)

// DefaultSideboardMarker starts the sideboard section of a deck list
const DefaultSideboardMarker = "SIDEBOARD:"

// DefaultCommentPrefix marks a line the parser ignores
const DefaultCommentPrefix = "//"

// Board holds one partition of a deck, one entry per physical copy in file order
type Board struct {
	Single []string
	Double []string
}

// Len returns the number of physical copies on the board
func (b Board) Len() int {
	return len(b.Single) + len(b.Double)
}

// Deck represents a parsed deck list
type Deck struct {
	Path string
	Main Board
	Side Board

	// SideboardSeen is set when the list has a sideboard marker, whether
	// or not sideboard cards were kept.
	SideboardSeen bool
}

// Options controls how a deck list is read
type Options struct {
	IncludeSideboard bool
	Separator        string // face separator, defaults to card.DefaultSeparator
	CommentPrefix    string // defaults to DefaultCommentPrefix
	SideboardMarker  string // matched case-insensitively, defaults to DefaultSideboardMarker
}

func (o Options) withDefaults() Options {
	if o.Separator == "" {
		o.Separator = card.DefaultSeparator
	}
	if o.CommentPrefix == "" {
		o.CommentPrefix = DefaultCommentPrefix
	}
	if o.SideboardMarker == "" {
		o.SideboardMarker = DefaultSideboardMarker
	}
	return o
}

// Entry is one parsed card line
type Entry struct {
	Quantity int
	Card     card.Card
}

// ParseError reports a deck-list line that cannot be read
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v: %q", path, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadDeck reads and parses a deck list file
func LoadDeck(path string, opts Options) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening deck list: %w", err)
	}
	defer f.Close()

	slog.Debug("parsing deck list", slog.String("path", path), slog.Bool("include_sideboard", opts.IncludeSideboard))

	d, err := parse(f, path, opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed deck list",
		slog.String("path", path),
		slog.Int("main_single", len(d.Main.Single)),
		slog.Int("main_double", len(d.Main.Double)),
		slog.Int("side_single", len(d.Side.Single)),
		slog.Int("side_double", len(d.Side.Double)),
		slog.Bool("sideboard_seen", d.SideboardSeen),
	)

	return d, nil
}

// Parse reads a deck list from r
func Parse(r io.Reader, opts Options) (*Deck, error) {
	return parse(r, "", opts)
}

func parse(r io.Reader, path string, opts Options) (*Deck, error) {
	opts = opts.withDefaults()
	d := &Deck{Path: path}
	inSideboard := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		line := strings.TrimSpace(raw)

		if IsSideboardMarker(line, opts.SideboardMarker) {
			inSideboard = true
			d.SideboardSeen = true
			continue
		}

		if IsSkippable(line, opts.CommentPrefix) {
			continue
		}

		entry, err := ParseLine(line, opts.Separator)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Text: line, Err: err}
		}

		if inSideboard && !opts.IncludeSideboard {
			continue
		}

		board := &d.Main
		if inSideboard {
			board = &d.Side
		}
		board.add(entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading deck list: %w", err)
	}

	return d, nil
}

func (b *Board) add(e Entry) {
	for i := 0; i < e.Quantity; i++ {
		if e.Card.Faces == 2 {
			b.Double = append(b.Double, e.Card.Name)
		} else {
			b.Single = append(b.Single, e.Card.Name)
		}
	}
}

// IsSideboardMarker reports whether a trimmed line opens the sideboard
func IsSideboardMarker(line, marker string) bool {
	if marker == "" {
		marker = DefaultSideboardMarker
	}
	return strings.EqualFold(line, marker)
}

// IsSkippable reports whether a trimmed line is blank or a comment
func IsSkippable(line, commentPrefix string) bool {
	if commentPrefix == "" {
		commentPrefix = DefaultCommentPrefix
	}
	return line == "" || strings.HasPrefix(line, commentPrefix)
}

// Errors returned by ParseLine, wrapped in a ParseError by the parser
var (
	ErrMissingName      = errors.New("expected \"<quantity> <name>\"")
	ErrInvalidQuantity  = errors.New("quantity is not an integer")
	ErrNegativeQuantity = errors.New("quantity is negative")
)

// ParseLine splits a trimmed card line into its quantity and canonical card
func ParseLine(line, separator string) (Entry, error) {
	qty, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Entry{}, ErrMissingName
	}

	n, err := strconv.Atoi(qty)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, qty)
	}
	if n < 0 {
		return Entry{}, fmt.Errorf("%w: %d", ErrNegativeQuantity, n)
	}

	return Entry{
		Quantity: n,
		Card:     card.New(card.CanonicalName(rest), separator),
	}, nil
}

// Count is the number of copies of one name
type Count struct {
	Name     string
	Quantity int
}

// Tally groups copies by name in first-seen order
func Tally(names []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, name := range names {
		if i, ok := index[name]; ok {
			counts[i].Quantity++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, Count{Name: name, Quantity: 1})
	}
	return counts
}
