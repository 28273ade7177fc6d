package reconcile

import (
	"github.com/arcanaland/deckdiff/internal/deck"
)

// Side holds what one deck contributes to the output
type Side struct {
	Path          string
	UniqueSingle  []string // single-faced copies not matched in the other deck
	UniqueDouble  []string // double-faced names absent from the other deck
	SideSingle    []string
	SideDouble    []string
	Total         int
	SideboardSeen bool
}

// Result is the reconciliation of two decks
type Result struct {
	A, B Side

	SharedSingle []string // one entry per copy present in both decks
	SharedDouble []string // one entry per name, copy counts collapse

	AllSingleShared  bool
	AllDoubleShared  bool
	IncludeSideboard bool
	LengthDifference int
}

// Reconcile matches the cards of two decks.
//
// Single-faced cards match as multisets: 2 Forest against 3 Forest shares two
// copies and leaves one for the second deck. Double-faced cards match as sets
// on exact name. Sideboard cards are carried through unmatched.
func Reconcile(a, b *deck.Deck, includeSideboard bool) *Result {
	r := &Result{IncludeSideboard: includeSideboard}

	setA, setB := newOrderedSet(a.Main.Double), newOrderedSet(b.Main.Double)
	r.SharedDouble = setA.intersect(setB)
	r.A.UniqueDouble = setA.subtract(setB)
	r.B.UniqueDouble = setB.subtract(setA)
	r.AllDoubleShared = len(r.A.UniqueDouble) == 0 && len(r.B.UniqueDouble) == 0

	countA, countB := newCounter(a.Main.Single), newCounter(b.Main.Single)
	shared := countA.intersect(countB)
	r.SharedSingle = shared.elements()
	r.A.UniqueSingle = countA.subtract(shared).elements()
	r.B.UniqueSingle = countB.subtract(shared).elements()
	r.AllSingleShared = len(r.A.UniqueSingle) == 0 && len(r.B.UniqueSingle) == 0

	r.A.fill(a, includeSideboard)
	r.B.fill(b, includeSideboard)

	r.LengthDifference = r.A.Total - r.B.Total
	if r.LengthDifference < 0 {
		r.LengthDifference = -r.LengthDifference
	}

	return r
}

func (s *Side) fill(d *deck.Deck, includeSideboard bool) {
	s.Path = d.Path
	s.SideboardSeen = d.SideboardSeen
	s.Total = d.Main.Len()
	if includeSideboard {
		s.SideSingle = d.Side.Single
		s.SideDouble = d.Side.Double
		s.Total += d.Side.Len()
	}
}

// Rows returns the number of CSV data rows the result produces
func (r *Result) Rows() int {
	n := max(len(r.A.UniqueSingle), len(r.B.UniqueSingle))
	n += len(r.SharedSingle) + len(r.SharedDouble)
	n += len(r.A.UniqueDouble) + len(r.B.UniqueDouble)
	if r.IncludeSideboard {
		n += len(r.A.SideSingle) + len(r.B.SideSingle)
		n += len(r.A.SideDouble) + len(r.B.SideDouble)
	}
	return n
}
