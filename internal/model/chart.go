package model

import "strings"

// Chart field keys as returned by the BaZi chart server. The payload
// is keyed in Chinese; accessors below keep the rest of the code free
// of raw key lookups.
const (
	KeyEightChars = "八字"
	KeyDayMaster  = "日主"
	KeyZodiac     = "生肖"
	KeySolarDate  = "阳历"

	KeyYearPillar  = "年柱"
	KeyMonthPillar = "月柱"
	KeyDayPillar   = "日柱"
	KeyHourPillar  = "时柱"

	keyStem   = "天干"
	keyBranch = "地支"
)

// ChartRecord is the raw chart payload from the chart server. It is
// produced once per request and never mutated afterwards. Accessors
// tolerate missing or malformed fields and return empty strings
// rather than failing, since upstream payload shapes vary.
type ChartRecord map[string]any

func (c ChartRecord) field(key string) string {
	if v, ok := c[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (c ChartRecord) EightChars() string { return c.field(KeyEightChars) }
func (c ChartRecord) DayMaster() string  { return c.field(KeyDayMaster) }
func (c ChartRecord) Zodiac() string     { return c.field(KeyZodiac) }
func (c ChartRecord) SolarDate() string  { return c.field(KeySolarDate) }

// Pillar returns the stem and branch glyphs for one of the four
// pillar keys. The chart server has returned pillars both as plain
// two-glyph strings and as nested objects, so both shapes are
// handled; anything else yields empty glyphs.
func (c ChartRecord) Pillar(key string) (stem, branch string) {
	switch p := c[key].(type) {
	case string:
		runes := []rune(strings.TrimSpace(p))
		if len(runes) >= 1 {
			stem = string(runes[0])
		}
		if len(runes) >= 2 {
			branch = string(runes[1])
		}
	case map[string]any:
		stem = glyphOf(p[keyStem], keyStem)
		branch = glyphOf(p[keyBranch], keyBranch)
	}
	return stem, branch
}

func glyphOf(v any, key string) string {
	switch g := v.(type) {
	case string:
		return strings.TrimSpace(g)
	case map[string]any:
		if s, ok := g[key].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
