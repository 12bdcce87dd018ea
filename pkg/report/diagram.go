package report

import "strings"

// Marker phrases tried in order when looking for the paragraph to
// attach the cycle diagram to.
var diagramMarkers = []string{
	"five elements",
	"5 elements",
	"elements analysis",
	"wu xing",
	"木火土金水",
}

// Five Elements (Wu Xing) cycle diagram. Arrowheads are inline
// polygons so the PDF renderer needs no marker-end support.
const fiveElementsDiagram = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 410" width="400" height="410" role="img" aria-label="Five Elements cycle">
  <defs>
    <radialGradient id="woodGrad" cx="50%" cy="50%" r="50%">
      <stop offset="0%" style="stop-color:#4ade80"/>
      <stop offset="100%" style="stop-color:#16a34a"/>
    </radialGradient>
    <radialGradient id="fireGrad" cx="50%" cy="50%" r="50%">
      <stop offset="0%" style="stop-color:#f87171"/>
      <stop offset="100%" style="stop-color:#dc2626"/>
    </radialGradient>
    <radialGradient id="earthGrad" cx="50%" cy="50%" r="50%">
      <stop offset="0%" style="stop-color:#fbbf24"/>
      <stop offset="100%" style="stop-color:#d97706"/>
    </radialGradient>
    <radialGradient id="metalGrad" cx="50%" cy="50%" r="50%">
      <stop offset="0%" style="stop-color:#e5e7eb"/>
      <stop offset="100%" style="stop-color:#9ca3af"/>
    </radialGradient>
    <radialGradient id="waterGrad" cx="50%" cy="50%" r="50%">
      <stop offset="0%" style="stop-color:#60a5fa"/>
      <stop offset="100%" style="stop-color:#2563eb"/>
    </radialGradient>
  </defs>
  <circle cx="200" cy="195" r="175" fill="#fef9e7" stroke="#d4a574" stroke-width="2"/>
  <path d="M 113 128 A 135 135 0 0 1 172 67" fill="none" stroke="#059669" stroke-width="3"/>
  <polygon points="176,61 184,64 174,72" fill="#059669"/>
  <path d="M 233 64 A 135 135 0 0 1 300 118" fill="none" stroke="#059669" stroke-width="3"/>
  <polygon points="304,124 305,132 294,128" fill="#059669"/>
  <path d="M 320 210 A 135 135 0 0 1 288 283" fill="none" stroke="#059669" stroke-width="3"/>
  <polygon points="283,289 275,291 281,280" fill="#059669"/>
  <path d="M 225 325 A 135 135 0 0 1 172 327" fill="none" stroke="#059669" stroke-width="3"/>
  <polygon points="166,325 160,319 172,317" fill="#059669"/>
  <path d="M 110 286 A 135 135 0 0 1 78 212" fill="none" stroke="#059669" stroke-width="3"/>
  <polygon points="77,205 82,198 87,209" fill="#059669"/>
  <line x1="108" y1="185" x2="240" y2="297" stroke="#b91c1c" stroke-width="2" stroke-dasharray="6,4"/>
  <line x1="180" y1="85" x2="152" y2="288" stroke="#b91c1c" stroke-width="2" stroke-dasharray="6,4"/>
  <line x1="292" y1="185" x2="162" y2="298" stroke="#b91c1c" stroke-width="2" stroke-dasharray="6,4"/>
  <line x1="222" y1="85" x2="292" y2="188" stroke="#b91c1c" stroke-width="2" stroke-dasharray="6,4"/>
  <line x1="108" y1="172" x2="287" y2="158" stroke="#b91c1c" stroke-width="2" stroke-dasharray="6,4"/>
  <circle cx="80" cy="170" r="40" fill="url(#woodGrad)" stroke="#166534" stroke-width="2"/>
  <text x="80" y="163" text-anchor="middle" fill="white" font-size="20" font-weight="bold">木</text>
  <text x="80" y="183" text-anchor="middle" fill="white" font-size="11">Wood</text>
  <circle cx="200" cy="55" r="40" fill="url(#fireGrad)" stroke="#991b1b" stroke-width="2"/>
  <text x="200" y="48" text-anchor="middle" fill="white" font-size="20" font-weight="bold">火</text>
  <text x="200" y="68" text-anchor="middle" fill="white" font-size="11">Fire</text>
  <circle cx="320" cy="170" r="40" fill="url(#earthGrad)" stroke="#92400e" stroke-width="2"/>
  <text x="320" y="163" text-anchor="middle" fill="white" font-size="20" font-weight="bold">土</text>
  <text x="320" y="183" text-anchor="middle" fill="white" font-size="11">Earth</text>
  <circle cx="265" cy="315" r="40" fill="url(#metalGrad)" stroke="#4b5563" stroke-width="2"/>
  <text x="265" y="308" text-anchor="middle" fill="#374151" font-size="20" font-weight="bold">金</text>
  <text x="265" y="328" text-anchor="middle" fill="#374151" font-size="11">Metal</text>
  <circle cx="135" cy="315" r="40" fill="url(#waterGrad)" stroke="#1e40af" stroke-width="2"/>
  <text x="135" y="308" text-anchor="middle" fill="white" font-size="20" font-weight="bold">水</text>
  <text x="135" y="328" text-anchor="middle" fill="white" font-size="11">Water</text>
  <rect x="85" y="375" width="230" height="26" rx="5" fill="white" stroke="#d4a574" stroke-width="1"/>
  <line x1="100" y1="388" x2="125" y2="388" stroke="#059669" stroke-width="3"/>
  <polygon points="126,384 132,388 126,392" fill="#059669"/>
  <text x="137" y="392" fill="#444" font-size="10">Generating</text>
  <line x1="210" y1="388" x2="235" y2="388" stroke="#b91c1c" stroke-width="2" stroke-dasharray="6,4"/>
  <text x="242" y="392" fill="#444" font-size="10">Controlling</text>
</svg>`

const diagramFigure = `<div class="element-diagram">` + fiveElementsDiagram + `</div>`

// insertDiagram places the five-element cycle diagram right after the
// first paragraph that mentions the concept, trying the marker
// phrases in priority order. Best effort: paragraphs only (headings
// don't count), and when nothing matches the diagram is left out.
func insertDiagram(html string) string {
	lower := strings.ToLower(html)

	for _, marker := range diagramMarkers {
		from := 0
		for {
			start := strings.Index(lower[from:], "<p")
			if start < 0 {
				break
			}
			start += from

			end := strings.Index(lower[start:], "</p>")
			if end < 0 {
				break
			}
			end += start + len("</p>")

			if strings.Contains(lower[start:end], marker) {
				return html[:end] + "\n" + diagramFigure + html[end:]
			}
			from = end
		}
	}

	return html
}
