package llm

import (
	"encoding/json"
	"strings"

	"bazireport/internal/model"
)

const promptVersion = "v2"

// Token ceiling high enough to fit all thirteen sections.
const maxReportTokens = 12000

// RequiredSections lists one keyword marker per mandated report
// section. Verification is a substring scan, so the markers are kept
// loose enough to match the model's actual headings.
var RequiredSections = []string{
	"life path",     // 1. Three Life Path Simulations
	"luck cycle",    // 2. Ten-Year Luck Cycle
	"element",       // 3. Five Elements Analysis
	"relationship",  // 4. Relationship Compatibility
	"intelligence",  // 5. Natural Intelligence
	"communication", // 6. Communication & Energy
	"life force",    // 7. Life Force (Chi)
	"wealth",        // 8. Wealth Cleansing
	"furniture",     // 9. Home Furniture
	"death",         // 10. Death Particle
	"treasure",      // 11. Imperial Treasures
	"celebrity",     // 12. Celebrity Comparisons
	"routine",       // 13. Daily Routine
}

// VerifySections returns the required section keywords that do not
// appear in the text (case-insensitive). A non-empty result is a
// soft failure: the content still ships, callers log and report it.
func VerifySections(text string) []string {
	lower := strings.ToLower(text)

	var missing []string
	for _, section := range RequiredSections {
		if !strings.Contains(lower, section) {
			missing = append(missing, section)
		}
	}
	return missing
}

const systemPrompt = `You are a master BaZi (八字) astrologer with decades of experience in Chinese metaphysics.

Your task is to generate the text content of a comprehensive BaZi report in Markdown format.

CRITICAL RULES:
1. You MUST include ALL 13 sections - no exceptions
2. Do NOT generate any HTML, CSS, or styling
3. Use Markdown formatting (headers, bold, italics, lists)
4. Be mystical, engaging, and personalized
5. Base everything on the actual chart data provided
6. Each section should be 150-200 words - detailed but CONCISE
7. Return ONLY Markdown content
8. COMPLETE ALL 13 SECTIONS - if running low on space, make sections shorter but NEVER skip sections

IMPORTANT: Completing all 13 sections is MORE important than making each section extremely long.`

const sectionTemplate = `Based on the following BaZi birth chart, generate a COMPLETE personalized destiny report.

## Birth Chart Data
{{BAZI_JSON}}

## CRITICAL INSTRUCTION
You MUST generate ALL 13 sections below. Missing any section is NOT acceptable.

---

# 🔮 Your Personalized BaZi Destiny Report

*For a {{ZODIAC}} born on {{BIRTH_DATE}}*

---

## 1. 🌟 Three Life Path Simulations
Dive into the hidden intricacies that lie before you – map out:
- **Obstacles** that will test your resolve
- **Challenges** you must overcome
- **Opportunities** waiting to be seized
Generate 3 distinct possible life paths based on different choices.

---

## 2. 📅 Ten-Year Luck Cycle Analysis
Analyze the 大运 (Major Luck Cycles):
- Your current 10-year luck cycle and its meaning
- The upcoming cycle and what to expect
- **PEAK LUCK periods in the next 12 months** - specific months to watch
- How to maximize these favorable windows

---

## 3. 🔥 Five Elements Analysis
Examine the 5 elements (木火土金水) in this chart:
- Which elements **nourish** your Day Master
- Which elements **clash** with your energetic fingerprints
- Signs of elemental deficiency and what bad luck it brings
- Practical ways to balance your elements (colors, foods, directions)

---

## 4. 💕 Relationship Compatibility
Reveal the spooky relationship truths:
- Who is **right for you** - ideal partner elements
- Who is **meant to stay** in your life
- Who is **secretly trying to help you**
- Traits that reveal who's really on your side
- Warning signs of incompatible people

---

## 5. 🧠 Natural Intelligence Patterns
Unlock your mental potential:
- Your natural thinking style based on Ten Gods (十神)
- The **BEST ways to use your intelligence**
- How working with your natural patterns can increase income (like our users who see up to 25% increase in 1 month)
- Specific career and learning recommendations

---

## 6. 💬 Communication & Energy Adjustments
Simple adjustments to **how you talk, move, and act**:
- Speaking patterns that charge you with right energies
- Body language adjustments for better reception
- How to attract the right people who provide gifts, guidance & wisdom
- Daily energy optimization techniques

---

## 7. ⚡ Life Force (Chi) Analysis
If you feel **uninspired, stuck, or trapped** in old patterns:
- Signs that you're low on Life Force (Chi)
- How clashing energies drain hundreds of thousands of people yearly
- **The way out** if you feel stuck and lethargic
- Specific Chi-building exercises for this chart

---

## 8. 💰 Wealth Cleansing Ritual
A simple wealth cleansing tailored to your **specific Day Master**:
- Step-by-step ritual instructions
- How to replenish wealth blocks
- Clearing clashing energies around money
- Best timing for performing this ritual

---

## 9. 🏠 Home Furniture Adjustments
Feng Shui for abundance:
- Specific furniture placements for your chart
- How to nourish abundance-creating energies
- The shocking changes people experience at full potential
- Room-by-room recommendations

---

## 10. ⚠️ Death Particle Detection
Detect the little-known **death particle (死氣)** from your chart:
- Methods to identify this particle
- How it invites misfortune
- People to **stay away from** who carry this particle
- How it creates a "hanging noose" around your cash cows

---

## 11. 👑 Four Sacred Imperial Treasures
Instructions for 4 treasures tailored to YOUR chart:
- What each treasure does for your Day Master
- How they **scare away death particles**
- How they welcome correct energies
- Specific activation instructions

---

## 12. 🌟 Celebrity Comparisons
Discover who you could become:
- 2-3 **rich, powerful, celebrity-status** individuals similar to you
- What gifts they expressed from their BaZi
- What you share with them
- How to fully express YOUR true hidden gifts

---

## 13. ☀️ Daily Routine Adjustments
Simple daily practices to:
- **Energize weak elements** in your chart
- Feel refreshed from the moment you wake
- Tune your mind to the frequency of abundance in seconds
- Morning, afternoon, and evening routines

---

Write in English with occasional Chinese terms for authenticity.
Be engaging, mystical, and SPECIFIC to this individual's chart.
Return ONLY the Markdown content - no HTML, no extra formatting.`

// renderUserPrompt substitutes the chart's JSON form, zodiac and
// normalized birth date into the section outline. The template text
// contains literal percent signs, hence a replacer instead of Sprintf.
func renderUserPrompt(chart model.ChartRecord) string {
	baziJSON, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		baziJSON = []byte("{}")
	}

	zodiac := chart.Zodiac()
	if zodiac == "" {
		zodiac = "Unknown"
	}

	birthDate := chart.SolarDate()
	if birthDate == "" {
		birthDate = "Unknown date"
	}

	return strings.NewReplacer(
		"{{BAZI_JSON}}", string(baziJSON),
		"{{ZODIAC}}", zodiac,
		"{{BIRTH_DATE}}", birthDate,
	).Replace(sectionTemplate)
}
