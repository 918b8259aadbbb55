package floorplan

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/queue"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// roomNameOpen is the cell that may start an embedded room name.
const roomNameOpen = '('

// roomNamePattern matches a parenthesised room name such as "(living room)".
var roomNamePattern = regexp.MustCompile(`\(([^)]+)\)`)

// neighbours are the four orthogonal offsets; diagonals never connect cells.
var neighbours = [4]cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

type cell struct {
	row, col int
}

// nameSpan is a parenthesised name on a row. Columns are rune indices, end is exclusive.
type nameSpan struct {
	start, end int
	name       string
}

func (s nameSpan) covers(col int) bool {
	return s.start <= col && col < s.end
}

// Region is one connected area discovered by a single flood fill.
type Region struct {
	// Name is the first room name found inside the region, empty when none was found.
	Name string
	// Chairs holds the region's chair counts, one entry per chair type.
	Chairs Tally
	// Cells is the number of cells in the region.
	Cells int
}

// Named reports whether the region carries a room name.
func (r Region) Named() bool {
	return r.Name != ""
}

// Stats summarises the last Parse.
type Stats struct {
	Regions            int `json:"regions"`
	NamedRegions       int `json:"named_regions"`
	UnnamedRegions     int `json:"unnamed_regions"`
	UnattributedChairs int `json:"unattributed_chairs"`
	VisitedCells       int `json:"visited_cells"`
}

// Scanner segments a Grid into rooms and counts the chairs inside them.
// A Scanner is not safe for concurrent use; Parse may be called repeatedly.
type Scanner struct {
	grid   Grid
	legend Legend
	logger *zap.Logger
	spans  [][]nameSpan

	visited [][]bool
	rooms   Rooms
	stats   Stats
}

// NewScanner validates the legend and the grid and prepares a Scanner.
// Ragged grids are padded to their longest row.
func NewScanner(grid Grid, legend Legend, logger *zap.Logger) (*Scanner, error) {
	if err := legend.Validate(); err != nil {
		return nil, err
	}
	grid = grid.Padded()
	if grid.Rows() == 0 {
		return nil, fmt.Errorf("%w: the padded plan has no rows", ErrEmptyPlan)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	spans := make([][]nameSpan, grid.Rows())
	for x := range grid {
		spans[x] = findNameSpans(grid.Row(x))
	}

	logger.Debug("Floor plan loaded",
		zap.Int("rows", grid.Rows()),
		zap.Int("cols", grid.Cols()),
		zap.String("chair_types", string(legend.Chairs())),
		zap.String("separators", string(legend.Separators())),
	)

	return &Scanner{
		grid:   grid,
		legend: legend,
		logger: logger,
		spans:  spans,
	}, nil
}

// Parse scans the whole grid in row-major order and returns the room mapping.
// Every call starts from a cleared visited matrix, so repeated calls give the same result.
// Chairs in regions without a room name are not attributed to any room.
func (s *Scanner) Parse() Rooms {
	s.logger.Debug("Starting to parse the floor plan")
	s.reset()

	for x := range s.grid {
		for y := range s.grid[x] {
			if !s.traversable(x, y) {
				continue
			}
			region := s.flood(cell{x, y})
			s.record(region, x, y)
		}
	}

	s.logger.Debug("Finished parsing the floor plan",
		zap.Int("regions", s.stats.Regions),
		zap.Int("rooms", len(s.rooms)),
	)
	return s.rooms
}

// Stats returns counters for the last Parse.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Visited reports whether cell (x, y) was reached by the last Parse.
func (s *Scanner) Visited(x, y int) bool {
	return s.inBounds(x, y) && s.visited != nil && s.visited[x][y]
}

func (s *Scanner) reset() {
	s.visited = make([][]bool, s.grid.Rows())
	for x := range s.visited {
		s.visited[x] = make([]bool, s.grid.Cols())
	}
	s.rooms = make(Rooms)
	s.stats = Stats{}
}

func (s *Scanner) inBounds(x, y int) bool {
	return x >= 0 && x < s.grid.Rows() && y >= 0 && y < s.grid.Cols()
}

// traversable reports whether (x, y) is inside the grid, not yet visited and not a wall.
func (s *Scanner) traversable(x, y int) bool {
	return s.inBounds(x, y) && !s.visited[x][y] && !s.legend.IsWall(s.grid[x][y])
}

// flood runs a breadth-first search from start. Cells are marked visited when
// they enter the frontier, so each cell is enqueued once per Parse.
func (s *Scanner) flood(start cell) Region {
	region := Region{Chairs: s.legend.emptyTally()}

	frontier := queue.New[cell]()
	s.visited[start.row][start.col] = true
	frontier.Enqueue(start)

	for !frontier.Empty() {
		c := frontier.Dequeue()
		region.Cells++

		switch value := s.grid[c.row][c.col]; {
		case s.legend.IsChair(value):
			region.Chairs[value]++
		case !region.Named() && value == roomNameOpen:
			region.Name, _ = s.roomNameAt(c.row, c.col)
		}

		for _, d := range neighbours {
			next := cell{c.row + d.row, c.col + d.col}
			if s.traversable(next.row, next.col) {
				s.visited[next.row][next.col] = true
				frontier.Enqueue(next)
			}
		}
	}
	return region
}

// record folds a finished region into the room mapping.
func (s *Scanner) record(region Region, x, y int) {
	s.stats.Regions++
	s.stats.VisitedCells += region.Cells

	if !region.Named() {
		s.stats.UnnamedRegions++
		s.stats.UnattributedChairs += region.Chairs.Sum()
		s.logger.Debug("Skipping unnamed area",
			zap.Int("row", x),
			zap.Int("col", y),
			zap.Int("cells", region.Cells),
			zap.Int("chairs", region.Chairs.Sum()),
		)
		s.dumpVisited()
		return
	}

	s.stats.NamedRegions++
	if _, ok := s.rooms[region.Name]; ok {
		s.logger.Debug("Updating room", zap.String("room", region.Name), zap.Stringer("chairs", region.Chairs))
	} else {
		s.logger.Debug("Discovered new room", zap.String("room", region.Name), zap.Stringer("chairs", region.Chairs))
	}
	s.rooms.Add(region.Name, region.Chairs)
	s.dumpVisited()
}

func (s *Scanner) roomNameAt(x, y int) (string, bool) {
	for _, span := range s.spans[x] {
		if span.covers(y) {
			return span.name, true
		}
	}
	return "", false
}

// dumpVisited logs the visited matrix, one line per row, when debug logging is on.
func (s *Scanner) dumpVisited() {
	if ce := s.logger.Check(zapcore.DebugLevel, "Visited matrix"); ce != nil {
		rows := make([]string, len(s.visited))
		for x, row := range s.visited {
			var b strings.Builder
			for y, seen := range row {
				if y > 0 {
					b.WriteByte(' ')
				}
				if seen {
					b.WriteByte('X')
				} else {
					b.WriteByte('.')
				}
			}
			rows[x] = b.String()
		}
		ce.Write(zap.Strings("visited", rows))
	}
}

// RoomNameAt returns the text inside the first parenthesised group on row whose
// span, parentheses included, covers column. Columns count runes.
func RoomNameAt(row string, column int) (string, bool) {
	for _, span := range findNameSpans(row) {
		if span.covers(column) {
			return span.name, true
		}
	}
	return "", false
}

func findNameSpans(row string) []nameSpan {
	matches := roomNamePattern.FindAllStringSubmatchIndex(row, -1)
	if len(matches) == 0 {
		return nil
	}
	spans := make([]nameSpan, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, nameSpan{
			start: utf8.RuneCountInString(row[:m[0]]),
			end:   utf8.RuneCountInString(row[:m[1]]),
			name:  row[m[2]:m[3]],
		})
	}
	return spans
}
