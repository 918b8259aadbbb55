package floorplan_test

import (
	"testing"

	"floor-plan/core/floorplan"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"
)

func TestRoomsAdd(t *testing.T) {
	rooms := floorplan.Rooms{}
	rooms.Add("hall", floorplan.Tally{'P': 1, 'S': 0})
	rooms.Add("hall", floorplan.Tally{'P': 2, 'S': 3})
	rooms.Add("den", floorplan.Tally{'P': 0, 'S': 1})

	assert.Equal(t, floorplan.Tally{'P': 3, 'S': 3}, rooms["hall"])
	assert.Equal(t, floorplan.Tally{'P': 0, 'S': 1}, rooms["den"])
	assert.Equal(t, []string{"den", "hall"}, rooms.Names())
}

func TestRoomsTotal(t *testing.T) {
	rooms := floorplan.Rooms{
		"a": {'P': 1, 'C': 2},
		"b": {'P': 4, 'C': 0},
	}

	total := rooms.Total(mapset.Of('P', 'C', 'W'))
	assert.Equal(t, floorplan.Tally{'P': 5, 'C': 2, 'W': 0}, total)
	assert.Equal(t, 7, total.Sum())
}

func TestRoomsFormat(t *testing.T) {
	chairs := mapset.Of('C', 'S', 'P', 'W')

	t.Run("NoRooms", func(t *testing.T) {
		assert.Equal(t, "total:\nW: 0, S: 0, P: 0, C: 0", floorplan.Rooms{}.Format(chairs))
	})

	t.Run("SortedRoomsReverseChairs", func(t *testing.T) {
		rooms := floorplan.Rooms{
			"office":  {'W': 2, 'P': 1},
			"balcony": {'P': 2},
		}
		want := "total:\n" +
			"W: 2, S: 0, P: 3, C: 0\n" +
			"balcony:\n" +
			"W: 0, S: 0, P: 2, C: 0\n" +
			"office:\n" +
			"W: 2, S: 0, P: 1, C: 0"
		assert.Equal(t, want, rooms.Format(chairs))
	})

	t.Run("UnionOfChairTypes", func(t *testing.T) {
		rooms := floorplan.Rooms{"a": {'X': 1}}
		want := "total:\nX: 1, P: 0\na:\nX: 1, P: 0"
		assert.Equal(t, want, rooms.Format(mapset.Of('P')))
	})

	t.Run("IsReadOnly", func(t *testing.T) {
		rooms := floorplan.Rooms{"a": {'P': 1}}
		rooms.Format(chairs)
		assert.Equal(t, floorplan.Rooms{"a": {'P': 1}}, rooms)
	})
}

func TestTally(t *testing.T) {
	tally := floorplan.Tally{'P': 3, 'C': 1}

	assert.Equal(t, "P: 3, C: 1", tally.String())
	assert.Equal(t, map[string]int{"P": 3, "C": 1}, tally.Named())

	clone := tally.Clone()
	clone['P'] = 0
	assert.Equal(t, 3, tally['P'])
}
