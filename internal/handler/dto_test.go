package handler

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func validRequest() GenerateReportRequest {
	return GenerateReportRequest{
		BirthDate: "1990-05-15",
		BirthTime: "14:30",
		Location:  "Karachi, Pakistan",
		Gender:    "male",
	}
}

func TestValidate_AcceptsValidRequest(t *testing.T) {
	req := validRequest()
	assert.Equal(t, (*ValidationError)(nil), req.Validate())
}

func TestValidate_BirthDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"iso format", "1990-05-15", true},
		{"slash separators", "1990/05/15", false},
		{"missing zero padding", "1990-5-15", false},
		{"month out of range", "1990-13-01", false},
		{"day out of range", "1990-02-30", false},
		{"future date", "2999-01-01", false},
		{"before 1900", "1899-12-31", false},
		{"empty", "", false},
		{"surrounding whitespace", "  1990-05-15  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.BirthDate = tt.value
			verr := req.Validate()
			if tt.valid {
				assert.Equal(t, (*ValidationError)(nil), verr)
			} else {
				assert.NotEqual(t, (*ValidationError)(nil), verr)
				assert.Equal(t, "birth_date", verr.Field)
			}
		})
	}
}

func TestValidate_BirthTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"midday", "14:30", true},
		{"midnight", "00:00", true},
		{"last minute", "23:59", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "14:60", false},
		{"with seconds", "14:30:00", false},
		{"twelve hour clock", "2:30 PM", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.BirthTime = tt.value
			verr := req.Validate()
			if tt.valid {
				assert.Equal(t, (*ValidationError)(nil), verr)
			} else {
				assert.NotEqual(t, (*ValidationError)(nil), verr)
				assert.Equal(t, "birth_time", verr.Field)
			}
		})
	}
}

func TestValidate_Location(t *testing.T) {
	req := validRequest()
	req.Location = "NY"
	verr := req.Validate()
	assert.NotEqual(t, (*ValidationError)(nil), verr)
	assert.Equal(t, "location", verr.Field)

	req = validRequest()
	req.Location = strings.Repeat("a", 101)
	verr = req.Validate()
	assert.NotEqual(t, (*ValidationError)(nil), verr)
	assert.Equal(t, "location", verr.Field)

	req = validRequest()
	req.Location = strings.Repeat("a", 100)
	assert.Equal(t, (*ValidationError)(nil), req.Validate())
}

func TestValidate_LocationStripsMarkup(t *testing.T) {
	req := validRequest()
	req.Location = "<script>alert(1)</script>Lahore, Pakistan"
	assert.Equal(t, (*ValidationError)(nil), req.Validate())
	assert.Equal(t, "alert(1)Lahore, Pakistan", req.Location)

	// Markup alone leaves too little behind.
	req = validRequest()
	req.Location = "<b></b>"
	verr := req.Validate()
	assert.NotEqual(t, (*ValidationError)(nil), verr)
	assert.Equal(t, "location", verr.Field)
}

func TestValidate_GenderDefaultsAndRejects(t *testing.T) {
	req := validRequest()
	req.Gender = ""
	assert.Equal(t, (*ValidationError)(nil), req.Validate())
	assert.Equal(t, "male", req.Gender)

	req = validRequest()
	req.Gender = "female"
	assert.Equal(t, (*ValidationError)(nil), req.Validate())

	req = validRequest()
	req.Gender = "other"
	verr := req.Validate()
	assert.NotEqual(t, (*ValidationError)(nil), verr)
	assert.Equal(t, "gender", verr.Field)
}

func TestValidate_OutputFormatDefaultsAndRejects(t *testing.T) {
	req := validRequest()
	req.OutputFormat = ""
	assert.Equal(t, (*ValidationError)(nil), req.Validate())
	assert.Equal(t, "both", req.OutputFormat)

	for _, format := range []string{"html", "pdf", "both"} {
		req = validRequest()
		req.OutputFormat = format
		assert.Equal(t, (*ValidationError)(nil), req.Validate())
	}

	req = validRequest()
	req.OutputFormat = "docx"
	verr := req.Validate()
	assert.NotEqual(t, (*ValidationError)(nil), verr)
	assert.Equal(t, "output_format", verr.Field)
}

func TestDisplayName(t *testing.T) {
	req := validRequest()
	req.Name = "Ahmed"
	assert.Equal(t, "Ahmed", req.DisplayName())

	req = validRequest()
	req.Name = ""
	assert.Equal(t, "Karachi", req.DisplayName())

	req = validRequest()
	req.Location = "Tokyo"
	assert.Equal(t, "Tokyo", req.DisplayName())
}
