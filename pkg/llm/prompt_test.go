package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"bazireport/internal/model"
)

// fixture text containing every required section keyword.
const completeReport = `# Your Personalized BaZi Destiny Report

## 1. Three Life Path Simulations
...

## 2. Ten-Year Luck Cycle Analysis
...

## 3. Five Elements Analysis
...

## 4. Relationship Compatibility
...

## 5. Natural Intelligence Patterns
...

## 6. Communication & Energy Adjustments
...

## 7. Life Force (Chi) Analysis
...

## 8. Wealth Cleansing Ritual
...

## 9. Home Furniture Adjustments
...

## 10. Death Particle Detection
...

## 11. Four Sacred Imperial Treasures
...

## 12. Celebrity Comparisons
...

## 13. Daily Routine Adjustments
...`

func TestVerifySections_Complete(t *testing.T) {
	missing := VerifySections(completeReport)
	assert.Equal(t, 0, len(missing))
}

func TestVerifySections_CaseInsensitive(t *testing.T) {
	missing := VerifySections(strings.ToUpper(completeReport))
	assert.Equal(t, 0, len(missing))
}

func TestVerifySections_EachKeywordDetectedIndividually(t *testing.T) {
	replacements := map[string]string{
		"life path":     "Life Path Simulations",
		"luck cycle":    "Luck Cycle Analysis",
		"element":       "Elements Analysis",
		"relationship":  "Relationship Compatibility",
		"intelligence":  "Intelligence Patterns",
		"communication": "Communication & Energy",
		"life force":    "Life Force (Chi)",
		"wealth":        "Wealth Cleansing",
		"furniture":     "Furniture Adjustments",
		"death":         "Death Particle",
		"treasure":      "Imperial Treasures",
		"celebrity":     "Celebrity Comparisons",
		"routine":       "Routine Adjustments",
	}

	for _, keyword := range RequiredSections {
		t.Run(keyword, func(t *testing.T) {
			mutilated := strings.ReplaceAll(completeReport, replacements[keyword], "REDACTED")
			missing := VerifySections(mutilated)

			assert.Equal(t, 1, len(missing))
			assert.Equal(t, keyword, missing[0])
		})
	}
}

func TestVerifySections_EmptyText(t *testing.T) {
	missing := VerifySections("")
	assert.Equal(t, len(RequiredSections), len(missing))
}

func TestRenderUserPrompt(t *testing.T) {
	chart := model.ChartRecord{
		model.KeyEightChars: "庚午 辛巳 丙寅 乙未",
		model.KeyZodiac:     "Horse",
		model.KeySolarDate:  "1990-05-15 14:30",
	}

	prompt := renderUserPrompt(chart)

	assert.Equal(t, true, strings.Contains(prompt, "For a Horse born on 1990-05-15 14:30"))
	assert.Equal(t, true, strings.Contains(prompt, "庚午 辛巳 丙寅 乙未"))
	assert.Equal(t, false, strings.Contains(prompt, "{{BAZI_JSON}}"))
	assert.Equal(t, false, strings.Contains(prompt, "{{ZODIAC}}"))
	assert.Equal(t, false, strings.Contains(prompt, "{{BIRTH_DATE}}"))
	// Literal percent signs in the template must survive rendering.
	assert.Equal(t, true, strings.Contains(prompt, "25% increase"))
}

func TestRenderUserPrompt_MissingFields(t *testing.T) {
	prompt := renderUserPrompt(model.ChartRecord{})

	assert.Equal(t, true, strings.Contains(prompt, "For a Unknown born on Unknown date"))
}
