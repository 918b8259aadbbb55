package floorplan

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"floor-plan/core/utils"

	"github.com/zyedidia/generic/mapset"
)

// Legend tells the scanner how to read plan characters.
type Legend struct {
	// ChairTypes are counted independently inside each room.
	ChairTypes mapset.Set[rune]
	// Walls block traversal and never belong to a room.
	Walls mapset.Set[rune]
}

// NewLegend builds a validated Legend from explicit character slices.
func NewLegend(chairTypes, walls []rune) (Legend, error) {
	l := Legend{
		ChairTypes: mapset.Of(chairTypes...),
		Walls:      mapset.Of(walls...),
	}
	if err := l.Validate(); err != nil {
		return Legend{}, err
	}
	return l, nil
}

// ParseLegend builds a Legend from comma-separated lists such as "C,S,P,W".
func ParseLegend(chairTypes, separators string) (Legend, error) {
	chairs, err := parseCharList("chair types", chairTypes)
	if err != nil {
		return Legend{}, err
	}
	walls, err := parseCharList("wall separators", separators)
	if err != nil {
		return Legend{}, err
	}
	return NewLegend(chairs, walls)
}

func parseCharList(what, list string) ([]rune, error) {
	var out []rune
	for _, entry := range utils.SplitList(list, ",") {
		if utf8.RuneCountInString(entry) != 1 {
			return nil, fmt.Errorf("%w: %s entry %q is not a single character", ErrInvalidConfiguration, what, entry)
		}
		r, _ := utf8.DecodeRuneInString(entry)
		out = append(out, r)
	}
	return out, nil
}

// Validate reports ErrInvalidConfiguration when either set is empty.
func (l Legend) Validate() error {
	if l.ChairTypes.Size() == 0 {
		return fmt.Errorf("%w: chair types cannot be empty", ErrInvalidConfiguration)
	}
	if l.Walls.Size() == 0 {
		return fmt.Errorf("%w: wall separators cannot be empty", ErrInvalidConfiguration)
	}
	return nil
}

// Chairs returns the chair types in ascending order.
func (l Legend) Chairs() []rune {
	return sortedRunes(l.ChairTypes)
}

// Separators returns the wall characters in ascending order.
func (l Legend) Separators() []rune {
	return sortedRunes(l.Walls)
}

// IsWall reports whether r blocks traversal.
func (l Legend) IsWall(r rune) bool {
	return l.Walls.Has(r)
}

// IsChair reports whether r is a counted chair type.
func (l Legend) IsChair(r rune) bool {
	return l.ChairTypes.Has(r)
}

// emptyTally returns a tally holding every chair type at zero.
func (l Legend) emptyTally() Tally {
	t := make(Tally, l.ChairTypes.Size())
	l.ChairTypes.Each(func(r rune) {
		t[r] = 0
	})
	return t
}

func sortedRunes(s mapset.Set[rune]) []rune {
	out := make([]rune, 0, s.Size())
	s.Each(func(r rune) {
		out = append(out, r)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
