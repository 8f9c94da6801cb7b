package dto

import "github.com/google/uuid"

// MonthlyReport summarizes one monthly trigger run.
type MonthlyReport struct {
	Period     string
	Dispatched map[string]uuid.UUID // user -> new highlight id
	Existing   []string             // already had a highlight for the period
	Skipped    []string             // below the photo threshold
	Failed     map[string]error
}

func NewMonthlyReport(period string) *MonthlyReport {
	return &MonthlyReport{
		Period:     period,
		Dispatched: make(map[string]uuid.UUID),
		Failed:     make(map[string]error),
	}
}
