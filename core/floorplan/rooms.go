package floorplan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Tally maps a chair type to its count.
type Tally map[rune]int

// Sum returns the number of chairs of every type.
func (t Tally) Sum() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Clone returns an independent copy of t.
func (t Tally) Clone() Tally {
	out := make(Tally, len(t))
	for r, c := range t {
		out[r] = c
	}
	return out
}

// Named returns the tally keyed by the chair character as a string.
func (t Tally) Named() map[string]int {
	out := make(map[string]int, len(t))
	for r, c := range t {
		out[string(r)] = c
	}
	return out
}

// String renders the tally over its own chair types in reverse order.
func (t Tally) String() string {
	return formatLine(t, chairUniverse(mapset.New[rune](), t))
}

// Rooms maps a room name to the chairs counted in every region carrying that name.
type Rooms map[string]Tally

// Add merges chairs into the named room, summing per chair type. The room keeps
// its own copy, so chairs can be reused by the caller.
func (r Rooms) Add(name string, chairs Tally) {
	existing, ok := r[name]
	if !ok {
		r[name] = chairs.Clone()
		return
	}
	for chair, count := range chairs {
		existing[chair] += count
	}
}

// Names returns the room names in ascending order.
func (r Rooms) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total sums every room per chair type. Each configured chair type is present, at zero if unseen.
func (r Rooms) Total(chairTypes mapset.Set[rune]) Tally {
	total := make(Tally, chairTypes.Size())
	chairTypes.Each(func(c rune) {
		total[c] = 0
	})
	for _, chairs := range r {
		for c, n := range chairs {
			total[c] += n
		}
	}
	return total
}

// Format renders the mapping as text:
//
//	total:
//	W: 14, S: 3, P: 7, C: 1
//	<room>:
//	W: 0, S: 0, P: 2, C: 0
//
// Rooms are listed in ascending order. Every line lists the configured chair types
// together with any type found in a room, in reverse order, with missing counts as zero.
func (r Rooms) Format(chairTypes mapset.Set[rune]) string {
	tallies := make([]Tally, 0, len(r))
	for _, chairs := range r {
		tallies = append(tallies, chairs)
	}
	universe := chairUniverse(chairTypes, tallies...)

	lines := []string{"total:", formatLine(r.Total(chairTypes), universe)}
	for _, name := range r.Names() {
		lines = append(lines, name+":", formatLine(r[name], universe))
	}
	return strings.Join(lines, "\n")
}

// chairUniverse returns chairTypes together with every key in tallies, in reverse order.
func chairUniverse(chairTypes mapset.Set[rune], tallies ...Tally) []rune {
	seen := mapset.New[rune]()
	chairTypes.Each(seen.Put)
	for _, t := range tallies {
		for c := range t {
			seen.Put(c)
		}
	}
	universe := sortedRunes(seen)
	sort.Slice(universe, func(i, j int) bool { return universe[i] > universe[j] })
	return universe
}

func formatLine(chairs Tally, universe []rune) string {
	parts := make([]string, len(universe))
	for i, c := range universe {
		parts[i] = fmt.Sprintf("%c: %d", c, chairs[c])
	}
	return strings.Join(parts, ", ")
}
