package floorplan_test

import (
	"os"
	"path/filepath"
	"testing"

	"floor-plan/core/floorplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	t.Run("PadsToLongestLine", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("+--+\n|\n+-+\n"))
		require.Equal(t, 3, grid.Rows())
		assert.Equal(t, 4, grid.Cols())
		assert.Equal(t, "+--+", grid.Row(0))
		assert.Equal(t, "|   ", grid.Row(1))
		assert.Equal(t, "+-+ ", grid.Row(2))
	})

	t.Run("StripsTrailingWhitespaceOnly", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("  P  \t\n |"))
		require.Equal(t, 2, grid.Rows())
		assert.Equal(t, "  P", grid.Row(0))
		assert.Equal(t, " | ", grid.Row(1))
	})

	t.Run("HandlesCRLF", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("+-+\r\n|P|\r\n+-+\r\n"))
		require.Equal(t, 3, grid.Rows())
		assert.Equal(t, "|P|", grid.Row(1))
	})

	t.Run("HandlesLoneCarriageReturn", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("+-+\r|P|\r+-+\r"))
		require.Equal(t, 3, grid.Rows())
		assert.Equal(t, "|P|", grid.Row(1))
		assert.Equal(t, "+-+", grid.Row(2))
	})

	t.Run("StripsByteOrderMark", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("\xef\xbb\xbf(a)\n"))
		require.Equal(t, 1, grid.Rows())
		assert.Equal(t, "(a)", grid.Row(0))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Equal(t, 0, floorplan.ParseGrid(nil).Rows())
		assert.Equal(t, 0, floorplan.ParseGrid([]byte("\xef\xbb\xbf")).Rows())
	})

	t.Run("BlankLinesKeepRows", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("\n   \n"))
		assert.Equal(t, 2, grid.Rows())
		assert.Equal(t, 0, grid.Cols())
	})

	t.Run("CountsRunesNotBytes", func(t *testing.T) {
		grid := floorplan.ParseGrid([]byte("(café)\nP"))
		assert.Equal(t, 6, grid.Cols())
		assert.Equal(t, "P     ", grid.Row(1))
	})
}

func TestDecodeGrid(t *testing.T) {
	t.Run("ValidText", func(t *testing.T) {
		grid, err := floorplan.DecodeGrid([]byte("\xef\xbb\xbf(café)\nP"))
		require.NoError(t, err)
		assert.Equal(t, "(café)", grid.Row(0))
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		_, err := floorplan.DecodeGrid([]byte("(ro\xffom)\nP"))
		assert.ErrorIs(t, err, floorplan.ErrLoad)
		assert.ErrorContains(t, err, "invalid UTF-8")
	})
}

func TestGridPadded(t *testing.T) {
	ragged := floorplan.Grid{[]rune("(a)  "), []rune("P")}
	padded := ragged.Padded()

	require.Equal(t, 2, padded.Rows())
	assert.Equal(t, "(a)  ", padded.Row(0))
	assert.Equal(t, "P    ", padded.Row(1))
	// The input is left untouched.
	assert.Equal(t, "P", ragged.Row(1))
}

func TestLoadGrid(t *testing.T) {
	t.Run("ReadsFile", func(t *testing.T) {
		grid, err := floorplan.LoadGrid(filepath.Join("testdata", "studio.txt"))
		require.NoError(t, err)
		assert.Equal(t, 5, grid.Rows())
		assert.Equal(t, 11, grid.Cols())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := floorplan.LoadGrid(filepath.Join(t.TempDir(), "invalid_file.txt"))
		assert.ErrorIs(t, err, floorplan.ErrNotFound)
		assert.NotErrorIs(t, err, floorplan.ErrLoad)
	})

	t.Run("DirectoryIsLoadError", func(t *testing.T) {
		_, err := floorplan.LoadGrid(t.TempDir())
		assert.ErrorIs(t, err, floorplan.ErrLoad)
	})

	t.Run("InvalidUTF8IsLoadError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latin1.txt")
		require.NoError(t, os.WriteFile(path, []byte("(ro\xffom)\nP"), 0o644))

		_, err := floorplan.LoadGrid(path)
		assert.ErrorIs(t, err, floorplan.ErrLoad)
		assert.NotErrorIs(t, err, floorplan.ErrNotFound)
	})

	t.Run("EmptyFileHasNoRows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		grid, err := floorplan.LoadGrid(path)
		require.NoError(t, err)
		assert.Equal(t, 0, grid.Rows())
	})
}

func TestGridString(t *testing.T) {
	grid := floorplan.ParseGrid([]byte("+-+\n|"))
	assert.Equal(t, "+-+\n|  ", grid.String())
}
