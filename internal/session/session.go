// Package session implements the annotation state machine: a cursor
// over a pagination sequence of row keys, and an insertion-ordered log
// of measurements keyed by (row, column, kind). Presentation layers
// drive it through Apply and read display state back out; the session
// itself never renders anything.
package session

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/mvickers/rowtally/internal/dataset"
)

// Sentinel errors for construction and recording failures. Callers
// match with errors.Is.
var (
	ErrInvalidColumn          = errors.New("invalid column")
	ErrInvalidMeasure         = errors.New("invalid measure")
	ErrInvalidSampleSize      = errors.New("invalid sample size")
	ErrInvalidPaginationEntry = errors.New("invalid pagination entry")
)

// Kind distinguishes a whole-record judgment from a per-column one.
type Kind string

const (
	KindOverall Kind = "overall"
	KindColumn  Kind = "column"
)

// Overall addresses the whole-record slot in Record and SavedMeasure.
const Overall = ""

// Unset is the deselected-measure sentinel. Recording it never writes
// a measurement, and SavedMeasure returns it when nothing is saved.
const Unset = ""

// Measures is the label vocabulary. Overall labels apply to the whole
// record, Each labels apply independently to every selected column.
// An empty slot disables that judgment type.
type Measures struct {
	Overall []string
	Each    []string
}

// Measurement is one recorded judgment. Value holds the cell content
// snapshotted at recording time; it is empty for overall judgments.
type Measurement struct {
	Row     int
	Column  string
	Value   string
	Measure string
	Kind    Kind
}

type measureKey struct {
	row    int
	column string
	kind   Kind
}

// Session owns the dataset reference, column selection, vocabulary,
// pagination sequence, cursor and measurement log. Not safe for
// concurrent use; a hosting UI serializes calls into it.
type Session struct {
	src      dataset.Source
	columns  []string
	measures Measures

	pages []int
	pos   int // index into pages; len(pages) means exhausted

	log   []Measurement
	byKey map[measureKey]int
}

// New builds a session over src. columns must name existing source
// columns. pagination, when non-nil, fixes which rows are visited and
// in what order (repeats allowed); nil visits every row in natural
// order. Every pagination entry must be a valid source key.
func New(src dataset.Source, columns []string, measures Measures, pagination []int) (*Session, error) {
	known := src.Columns()
	for _, c := range columns {
		if !contains(known, c) {
			return nil, columnError(c, known)
		}
	}

	var pages []int
	if pagination == nil {
		pages = src.Keys()
	} else {
		pages = append([]int(nil), pagination...)
		for _, key := range pages {
			if _, ok := src.Row(key); !ok {
				return nil, fmt.Errorf("%w: no row with key %d", ErrInvalidPaginationEntry, key)
			}
		}
	}

	return &Session{
		src:      src,
		columns:  append([]string(nil), columns...),
		measures: measures,
		pages:    pages,
		byKey:    make(map[measureKey]int),
	}, nil
}

// Source returns the record source the session pages through.
func (s *Session) Source() dataset.Source { return s.src }

// Columns returns the selected column names in display order.
func (s *Session) Columns() []string { return append([]string(nil), s.columns...) }

// Measures returns the configured vocabulary.
func (s *Session) Measures() Measures { return s.measures }

// Current returns the active row key, or false once the session is
// exhausted (or the pagination sequence was empty).
func (s *Session) Current() (int, bool) {
	if s.pos >= len(s.pages) {
		return 0, false
	}
	return s.pages[s.pos], true
}

// Exhausted reports whether the cursor has moved past the last
// pagination element.
func (s *Session) Exhausted() bool {
	return s.pos >= len(s.pages)
}

// Position returns the 1-based cursor position and the pagination
// length, for progress display. Position == total+1 once exhausted.
func (s *Session) Position() (int, int) {
	return s.pos + 1, len(s.pages)
}

// Advance moves the cursor one element forward. Advancing past the
// last element reaches the exhausted state and stays there.
func (s *Session) Advance() {
	if s.pos < len(s.pages) {
		s.pos++
	}
}

// Retreat moves the cursor one element back. It is a no-op at the
// first element and while exhausted: once the cursor leaves the
// sequence only a fresh session revisits it.
func (s *Session) Retreat() {
	if s.pos > 0 && s.pos < len(s.pages) {
		s.pos--
	}
}

// Record inserts or updates the measurement for (row, column). Pass
// Overall as the column for a whole-record judgment; value is the cell
// content being judged and is ignored for overall judgments. A later
// Record for the same slot replaces the earlier measurement in place.
// Recording Unset is a no-op and leaves any saved measurement alone.
func (s *Session) Record(row int, column, value, measure string) error {
	if measure == Unset {
		return nil
	}
	if err := s.checkMeasure(column, measure); err != nil {
		return err
	}

	kind := KindColumn
	if column == Overall {
		kind = KindOverall
		value = ""
	}

	key := measureKey{row: row, column: column, kind: kind}
	if i, ok := s.byKey[key]; ok {
		s.log[i].Measure = measure
		s.log[i].Value = value
		return nil
	}
	s.byKey[key] = len(s.log)
	s.log = append(s.log, Measurement{
		Row:     row,
		Column:  column,
		Value:   value,
		Measure: measure,
		Kind:    kind,
	})
	return nil
}

// SavedMeasure returns the recorded measure for (row, column), or
// Unset when none exists. Pass Overall for the whole-record slot.
func (s *Session) SavedMeasure(row int, column string) string {
	kind := KindColumn
	if column == Overall {
		kind = KindOverall
	}
	if i, ok := s.byKey[measureKey{row: row, column: column, kind: kind}]; ok {
		return s.log[i].Measure
	}
	return Unset
}

// Export returns the measurement log in insertion order. The returned
// slice is a copy; mutating it does not affect the session.
func (s *Session) Export() []Measurement {
	return append([]Measurement(nil), s.log...)
}

// checkMeasure validates a (column, measure) pair against the column
// selection and the applicable vocabulary without writing anything.
// Unset always passes.
func (s *Session) checkMeasure(column, measure string) error {
	if measure == Unset {
		return nil
	}
	kind := KindColumn
	vocab := s.measures.Each
	if column == Overall {
		kind = KindOverall
		vocab = s.measures.Overall
	} else if !contains(s.columns, column) {
		return columnError(column, s.columns)
	}
	if !contains(vocab, measure) {
		return fmt.Errorf("%w: %q not in %s vocabulary %v", ErrInvalidMeasure, measure, kind, vocab)
	}
	return nil
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

// columnError wraps ErrInvalidColumn, suggesting the nearest known
// column name when one is plausibly a typo.
func columnError(column string, known []string) error {
	best, bestDist := "", 4
	for _, k := range known {
		if d := levenshtein.ComputeDistance(column, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrInvalidColumn, column, best)
	}
	return fmt.Errorf("%w: %q", ErrInvalidColumn, column)
}
