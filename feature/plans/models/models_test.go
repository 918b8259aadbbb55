package models_test

import (
	"testing"

	"floor-plan/core/floorplan"
	"floor-plan/feature/plans/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	legend, err := floorplan.ParseLegend("P,C", "|")
	require.NoError(t, err)

	rooms := floorplan.Rooms{
		"den":  {'P': 1, 'C': 0},
		"hall": {'P': 2, 'C': 1},
	}
	stats := floorplan.Stats{Regions: 3, NamedRegions: 2, UnnamedRegions: 1}

	report := models.NewReport("plan.txt", rooms, legend, stats)

	assert.Equal(t, "plan.txt", report.Source)
	assert.Equal(t, map[string]int{"P": 3, "C": 1}, report.Total)
	assert.Equal(t, map[string]int{"P": 2, "C": 1}, report.Rooms["hall"])
	assert.Equal(t, "total:\nP: 3, C: 1\nden:\nP: 1, C: 0\nhall:\nP: 2, C: 1", report.Text)
	assert.Equal(t, stats, report.Stats)
}
