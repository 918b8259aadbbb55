package models

import (
	"floor-plan/core/floorplan"
)

// Report is the result of parsing one floor plan.
type Report struct {
	// Source names where the plan came from (file path, object key or "request").
	Source string `json:"source"`
	// Total holds the chair counts summed over every room.
	Total map[string]int `json:"total"`
	// Rooms maps each room name to its chair counts.
	Rooms map[string]map[string]int `json:"rooms"`
	// Text is the plain-text rendering printed by the command line.
	Text string `json:"report"`
	// Stats describes the regions found while parsing.
	Stats floorplan.Stats `json:"stats"`
}

// NewReport converts a room mapping into a Report.
func NewReport(source string, rooms floorplan.Rooms, legend floorplan.Legend, stats floorplan.Stats) *Report {
	byRoom := make(map[string]map[string]int, len(rooms))
	for name, chairs := range rooms {
		byRoom[name] = chairs.Named()
	}
	return &Report{
		Source: source,
		Total:  rooms.Total(legend.ChairTypes).Named(),
		Rooms:  byRoom,
		Text:   rooms.Format(legend.ChairTypes),
		Stats:  stats,
	}
}

// PlanList is the response of the plan listing endpoint.
type PlanList struct {
	Bucket string   `json:"bucket"`
	Prefix string   `json:"prefix"`
	Keys   []string `json:"keys"`
}

// ErrorResponse is returned by every endpoint on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
