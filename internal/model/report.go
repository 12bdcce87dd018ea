package model

import "time"

// Report is the metadata row persisted for every generated report.
// The files on disk are the product; this row exists for the history
// endpoint and for operational digging.
type Report struct {
	ID              int64
	ReportID        string
	BirthDate       string
	BirthTime       string
	Location        string
	Gender          string
	EightChars      string
	DayMaster       string
	Zodiac          string
	SolarDate       string
	MissingSections []string
	ModelUsed       string
	CreatedAt       time.Time
}
