package report

import "bazireport/internal/model"

// glyphInfo pairs a stem/branch glyph's romanized name with its
// element category.
type glyphInfo struct {
	Name    string
	Element string
}

// The ten heavenly stems.
var stemTable = map[string]glyphInfo{
	"甲": {"Jia", "wood"},
	"乙": {"Yi", "wood"},
	"丙": {"Bing", "fire"},
	"丁": {"Ding", "fire"},
	"戊": {"Wu", "earth"},
	"己": {"Ji", "earth"},
	"庚": {"Geng", "metal"},
	"辛": {"Xin", "metal"},
	"壬": {"Ren", "water"},
	"癸": {"Gui", "water"},
}

// The twelve earthly branches.
var branchTable = map[string]glyphInfo{
	"子": {"Zi", "water"},
	"丑": {"Chou", "earth"},
	"寅": {"Yin", "wood"},
	"卯": {"Mao", "wood"},
	"辰": {"Chen", "earth"},
	"巳": {"Si", "fire"},
	"午": {"Wu", "fire"},
	"未": {"Wei", "earth"},
	"申": {"Shen", "metal"},
	"酉": {"You", "metal"},
	"戌": {"Xu", "earth"},
	"亥": {"Hai", "water"},
}

// lookupGlyph resolves a glyph against a table. Unknown glyphs pass
// through with an "earth" element instead of failing, so a chart with
// an unexpected symbol still renders.
func lookupGlyph(table map[string]glyphInfo, glyph string) glyphInfo {
	if info, ok := table[glyph]; ok {
		return info
	}
	return glyphInfo{Name: glyph, Element: "earth"}
}

// Pillar is the display form of one chart pillar.
type Pillar struct {
	Label      string
	Stem       string
	Branch     string
	StemName   string
	BranchName string
	Element    string
}

var pillarKeys = []struct {
	key   string
	label string
}{
	{model.KeyYearPillar, "Year"},
	{model.KeyMonthPillar, "Month"},
	{model.KeyDayPillar, "Day"},
	{model.KeyHourPillar, "Hour"},
}

// extractPillars resolves the four pillars' glyphs into romanized
// names and element categories via the static tables.
func extractPillars(chart model.ChartRecord) []Pillar {
	pillars := make([]Pillar, 0, len(pillarKeys))
	for _, pk := range pillarKeys {
		stem, branch := chart.Pillar(pk.key)
		stemInfo := lookupGlyph(stemTable, stem)
		branchInfo := lookupGlyph(branchTable, branch)

		pillars = append(pillars, Pillar{
			Label:      pk.label,
			Stem:       stem,
			Branch:     branch,
			StemName:   stemInfo.Name,
			BranchName: branchInfo.Name,
			Element:    stemInfo.Element,
		})
	}
	return pillars
}
