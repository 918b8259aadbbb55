// Package floorplan segments ASCII floor plans into rooms and counts the chairs inside them.
//
// A plan is a grid of characters. Wall separators (by default + - | / \) split the
// grid into regions, and a region takes its room name from the first parenthesised
// text, such as "(living room)", whose span covers one of its '(' cells.
//
// # Grid Loader
//
// LoadGrid, ReadGrid, DecodeGrid and ParseGrid read plan text, drop a leading byte-order mark,
// strip trailing whitespace and right-pad every row with blanks so the grid is rectangular.
//
// # Region Scanner
//
// Scanner.Parse visits the grid in row-major order and runs a breadth-first flood
// fill (four neighbours, no diagonals) from every cell that is neither a wall nor
// already visited. Named regions are merged into Rooms by summing their tallies;
// chairs in unnamed regions are left out of the mapping and reported only through Stats.
//
// # Output
//
// Rooms.Format renders a "total:" section followed by one section per room in
// ascending order, each listing chair types in reverse order:
//
//	total:
//	W: 0, S: 0, P: 3, C: 0
//	studio:
//	W: 0, S: 0, P: 3, C: 0
//
// # Usage
//
//	legend, err := floorplan.ParseLegend("C,S,P,W", `+,-,|,/,\`)
//	grid, err := floorplan.LoadGrid("plan.txt")
//	scanner, err := floorplan.NewScanner(grid, legend, logger)
//	fmt.Println(scanner.Parse().Format(legend.ChairTypes))
package floorplan
