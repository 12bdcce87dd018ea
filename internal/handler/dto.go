package handler

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Earliest birth year the chart server produces sensible output for.
const minBirthYear = 1900

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	tagRe  = regexp.MustCompile(`<[^>]*>`)
)

type GenerateReportRequest struct {
	BirthDate    string `json:"birth_date"`
	BirthTime    string `json:"birth_time"`
	Location     string `json:"location"`
	Gender       string `json:"gender"`
	Name         string `json:"name"`
	OutputFormat string `json:"output_format"`
}

// ValidationError reports the first offending field. A request that
// fails validation never reaches any downstream component.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate normalizes the request in place and checks every field.
func (r *GenerateReportRequest) Validate() *ValidationError {
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	if !dateRe.MatchString(r.BirthDate) {
		return &ValidationError{"birth_date", "must be in YYYY-MM-DD format"}
	}

	parsed, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return &ValidationError{"birth_date", "invalid date, check month and day values"}
	}
	if parsed.After(time.Now()) {
		return &ValidationError{"birth_date", "birth date cannot be in the future"}
	}
	if parsed.Year() < minBirthYear {
		return &ValidationError{"birth_date", "birth date must be after year 1900"}
	}

	r.BirthTime = strings.TrimSpace(r.BirthTime)
	if !timeRe.MatchString(r.BirthTime) {
		return &ValidationError{"birth_time", "must be in HH:MM format (24-hour)"}
	}

	r.Location = strings.TrimSpace(tagRe.ReplaceAllString(strings.TrimSpace(r.Location), ""))
	if n := utf8.RuneCountInString(r.Location); n < 3 {
		return &ValidationError{"location", "must be at least 3 characters"}
	} else if n > 100 {
		return &ValidationError{"location", "is too long (max 100 characters)"}
	}

	if r.Gender == "" {
		r.Gender = "male"
	}
	if r.Gender != "male" && r.Gender != "female" {
		return &ValidationError{"gender", "must be male or female"}
	}

	if r.OutputFormat == "" {
		r.OutputFormat = "both"
	}
	switch r.OutputFormat {
	case "html", "pdf", "both":
	default:
		return &ValidationError{"output_format", "must be html, pdf or both"}
	}

	r.Name = strings.TrimSpace(r.Name)

	return nil
}

// DisplayName falls back to the city part of the location when no
// name was supplied.
func (r *GenerateReportRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	city := r.Location
	if idx := strings.Index(city, ","); idx >= 0 {
		city = city[:idx]
	}
	return strings.TrimSpace(city)
}

type FilesResponse struct {
	HTML string `json:"html,omitempty"`
	PDF  string `json:"pdf,omitempty"`
}

type BaziSummary struct {
	EightChars string `json:"eight_chars"`
	DayMaster  string `json:"day_master"`
	Zodiac     string `json:"zodiac"`
	SolarDate  string `json:"solar_date"`
}

type GenerateReportResponse struct {
	Success          bool          `json:"success"`
	ReportID         string        `json:"report_id"`
	Files            FilesResponse `json:"files"`
	BaziSummary      BaziSummary   `json:"bazi_summary"`
	SectionsVerified bool          `json:"sections_verified"`
	MissingSections  []string      `json:"missing_sections,omitempty"`
	Message          string        `json:"message"`
}

type ReportHistoryItem struct {
	ReportID        string   `json:"report_id"`
	BirthDate       string   `json:"birth_date"`
	BirthTime       string   `json:"birth_time"`
	Location        string   `json:"location"`
	Gender          string   `json:"gender"`
	EightChars      string   `json:"eight_chars"`
	Zodiac          string   `json:"zodiac"`
	MissingSections []string `json:"missing_sections"`
	ModelUsed       string   `json:"model_used"`
	CreatedAt       string   `json:"created_at"`
}

type ReportHistoryResponse struct {
	Reports []ReportHistoryItem `json:"reports"`
	Total   int                 `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}
