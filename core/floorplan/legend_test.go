package floorplan_test

import (
	"testing"

	"floor-plan/core/floorplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegend(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		legend, err := floorplan.ParseLegend("C,S,P,W", `+,-,|,/,\`)
		require.NoError(t, err)
		assert.Equal(t, []rune{'C', 'P', 'S', 'W'}, legend.Chairs())
		assert.Equal(t, []rune{'+', '-', '/', '\\', '|'}, legend.Separators())
		assert.True(t, legend.IsChair('P'))
		assert.False(t, legend.IsChair('+'))
		assert.True(t, legend.IsWall('\\'))
	})

	t.Run("EmptyChairTypes", func(t *testing.T) {
		_, err := floorplan.ParseLegend("", "+")
		assert.ErrorIs(t, err, floorplan.ErrInvalidConfiguration)
	})

	t.Run("EmptySeparators", func(t *testing.T) {
		_, err := floorplan.ParseLegend("C", ",")
		assert.ErrorIs(t, err, floorplan.ErrInvalidConfiguration)
	})

	t.Run("MultiCharacterEntry", func(t *testing.T) {
		_, err := floorplan.ParseLegend("CS,P", "+")
		assert.ErrorIs(t, err, floorplan.ErrInvalidConfiguration)
	})
}

func TestConfigLegend(t *testing.T) {
	legend, err := floorplan.Config{ChairTypes: "X", Separators: "#"}.Legend()
	require.NoError(t, err)
	assert.Equal(t, []rune{'X'}, legend.Chairs())
	assert.Equal(t, []rune{'#'}, legend.Separators())
}

func TestLegendValidate(t *testing.T) {
	assert.ErrorIs(t, floorplan.Legend{}.Validate(), floorplan.ErrInvalidConfiguration)

	_, err := floorplan.NewLegend([]rune{'P'}, nil)
	assert.ErrorIs(t, err, floorplan.ErrInvalidConfiguration)
}
