package report

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"bazireport/internal/model"
)

func TestLookupGlyph_KnownStems(t *testing.T) {
	tests := []struct {
		glyph   string
		name    string
		element string
	}{
		{"甲", "Jia", "wood"},
		{"丙", "Bing", "fire"},
		{"戊", "Wu", "earth"},
		{"庚", "Geng", "metal"},
		{"癸", "Gui", "water"},
	}

	for _, tt := range tests {
		info := lookupGlyph(stemTable, tt.glyph)
		assert.Equal(t, tt.name, info.Name)
		assert.Equal(t, tt.element, info.Element)
	}
}

func TestLookupGlyph_UnknownDefaultsToEarth(t *testing.T) {
	info := lookupGlyph(stemTable, "☠")
	assert.Equal(t, "☠", info.Name)
	assert.Equal(t, "earth", info.Element)

	info = lookupGlyph(branchTable, "")
	assert.Equal(t, "", info.Name)
	assert.Equal(t, "earth", info.Element)
}

func TestExtractPillars_StringShape(t *testing.T) {
	chart := model.ChartRecord{
		model.KeyYearPillar:  "庚午",
		model.KeyMonthPillar: "辛巳",
		model.KeyDayPillar:   "丙寅",
		model.KeyHourPillar:  "乙未",
	}

	pillars := extractPillars(chart)

	assert.Equal(t, 4, len(pillars))
	assert.Equal(t, "Year", pillars[0].Label)
	assert.Equal(t, "庚", pillars[0].Stem)
	assert.Equal(t, "午", pillars[0].Branch)
	assert.Equal(t, "Geng", pillars[0].StemName)
	assert.Equal(t, "Wu", pillars[0].BranchName)
	assert.Equal(t, "metal", pillars[0].Element)

	assert.Equal(t, "Day", pillars[2].Label)
	assert.Equal(t, "fire", pillars[2].Element)
}

func TestExtractPillars_NestedShape(t *testing.T) {
	chart := model.ChartRecord{
		model.KeyYearPillar: map[string]any{
			"天干": "庚",
			"地支": "午",
		},
		model.KeyMonthPillar: map[string]any{
			"天干": map[string]any{"天干": "辛"},
			"地支": map[string]any{"地支": "巳"},
		},
	}

	pillars := extractPillars(chart)

	assert.Equal(t, "庚", pillars[0].Stem)
	assert.Equal(t, "午", pillars[0].Branch)
	assert.Equal(t, "辛", pillars[1].Stem)
	assert.Equal(t, "巳", pillars[1].Branch)
}

func TestExtractPillars_MissingPillarsDegrade(t *testing.T) {
	pillars := extractPillars(model.ChartRecord{})

	assert.Equal(t, 4, len(pillars))
	for _, p := range pillars {
		assert.Equal(t, "", p.Stem)
		assert.Equal(t, "earth", p.Element)
	}
}
