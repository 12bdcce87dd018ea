package report

import "html/template"

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateHTML))

// templateData feeds the presentation template. Content is already
// converted, trusted HTML.
type templateData struct {
	Name        string
	Location    string
	Gender      string
	BirthTime   string
	EightChars  string
	DayMaster   string
	Zodiac      string
	BirthDate   string
	Pillars     []Pillar
	Content     template.HTML
	CurrentYear int
}

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>BaZi Destiny Report — {{.Name}}</title>
<style>
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: "Segoe UI", "Microsoft YaHei", Arial, sans-serif;
    font-size: 16px;
    line-height: 1.7;
    color: #333;
    background: #faf8f3;
}

.report-container {
    max-width: 860px;
    margin: 0 auto;
    padding: 0 20px 40px;
}

.report-header {
    text-align: center;
    padding: 40px 0 30px;
    margin-bottom: 20px;
    border-bottom: 2px solid #d4a537;
}

.report-title {
    font-size: 32px;
    color: #8B4513;
    margin-bottom: 5px;
}

.report-subtitle {
    font-size: 15px;
    color: #666;
    font-style: italic;
}

.bazi-card {
    background: #f5f0e6;
    border: 2px solid #d4a537;
    border-radius: 8px;
    padding: 15px 20px;
    margin: 20px auto 30px;
    max-width: 480px;
    text-align: center;
}

.bazi-chars {
    font-size: 28px;
    color: #8B4513;
    letter-spacing: 0.2em;
    margin-bottom: 10px;
    font-weight: bold;
}

.bazi-meta {
    font-size: 13px;
    color: #555;
}

.bazi-meta strong {
    color: #8B4513;
}

.pillar-table {
    width: 100%;
    max-width: 480px;
    margin: 0 auto 30px;
    border-collapse: collapse;
    font-size: 14px;
}

.pillar-table th,
.pillar-table td {
    border: 1px solid #d4a537;
    padding: 8px 10px;
    text-align: center;
}

.pillar-table th {
    background: #f5f0e6;
    color: #8B4513;
}

.pillar-glyphs {
    font-size: 20px;
    font-weight: bold;
    color: #6B4423;
}

.element-wood  { color: #16a34a; }
.element-fire  { color: #dc2626; }
.element-earth { color: #d97706; }
.element-metal { color: #6b7280; }
.element-water { color: #2563eb; }

.report-content {
    background: white;
    border-radius: 8px;
    padding: 30px 40px;
}

.report-content h1 {
    font-size: 24px;
    color: #8B4513;
    margin: 25px 0 15px;
    padding-bottom: 8px;
    border-bottom: 2px solid #d4a537;
}

.report-content h2 {
    font-size: 20px;
    color: #6B4423;
    margin: 20px 0 12px;
    padding-left: 10px;
    border-left: 3px solid #d4a537;
}

.report-content h3 {
    font-size: 17px;
    color: #5D3A1A;
    margin: 15px 0 10px;
}

.report-content p {
    margin: 10px 0;
    text-align: justify;
}

.report-content strong { color: #8B4513; }
.report-content em { color: #6B4423; }

.report-content ul,
.report-content ol {
    margin: 10px 0 10px 25px;
}

.report-content li { margin: 5px 0; }

.report-content hr {
    border: none;
    border-top: 1px solid #d4a537;
    margin: 25px 0;
}

.report-content blockquote {
    background: #f9f6f0;
    border-left: 3px solid #8B4513;
    padding: 10px 15px;
    margin: 15px 0;
    font-style: italic;
}

.report-content table {
    border-collapse: collapse;
    margin: 15px 0;
}

.report-content th,
.report-content td {
    border: 1px solid #d4a537;
    padding: 6px 10px;
}

.element-diagram {
    text-align: center;
    margin: 25px 0;
}

.report-footer {
    text-align: center;
    font-size: 12px;
    color: #888;
    margin-top: 30px;
    padding-top: 15px;
    border-top: 1px solid #ddd;
}

@media print {
    @page {
        size: A4;
        margin: 2cm 1.5cm;
    }

    body {
        font-size: 10pt;
        background: white !important;
    }

    .report-container { max-width: none; padding: 0 10px; }

    .report-header {
        padding: 20px 0 30px;
        background: #faf8f3 !important;
    }

    .report-title { font-size: 22pt; }
    .report-subtitle { font-size: 11pt; }

    .bazi-card {
        background: #f5f0e6 !important;
        page-break-inside: avoid;
    }

    .bazi-chars { font-size: 20pt; }
    .bazi-meta { font-size: 9pt; }

    .report-content {
        background: white !important;
        padding: 10px 0;
    }

    .report-content h1 { font-size: 16pt; page-break-after: avoid; }
    .report-content h2 { font-size: 13pt; page-break-after: avoid; }
    .report-content h3 { font-size: 11pt; page-break-after: avoid; }

    .report-content p { page-break-inside: avoid; }

    .bazi-card,
    .pillar-table,
    .report-content blockquote,
    .report-content ul,
    .report-content ol,
    .report-content table {
        page-break-inside: avoid;
    }

    .report-footer { font-size: 8pt; }
}
</style>
</head>
<body>
<div class="report-container">
    <header class="report-header">
        <h1 class="report-title">🔮 BaZi Destiny Report</h1>
        <p class="report-subtitle">Prepared for {{.Name}} — {{.Location}}</p>
    </header>

    <div class="bazi-card">
        <div class="bazi-chars">{{.EightChars}}</div>
        <div class="bazi-meta">
            <strong>Day Master:</strong> {{.DayMaster}} &nbsp;•&nbsp;
            <strong>Zodiac:</strong> {{.Zodiac}}<br>
            <strong>Born:</strong> {{.BirthDate}} at {{.BirthTime}} ({{.Gender}})
        </div>
    </div>

    <table class="pillar-table">
        <tr>
            {{range .Pillars}}<th>{{.Label}} Pillar</th>{{end}}
        </tr>
        <tr>
            {{range .Pillars}}<td class="pillar-glyphs">{{.Stem}}{{.Branch}}</td>{{end}}
        </tr>
        <tr>
            {{range .Pillars}}<td>{{.StemName}} {{.BranchName}}</td>{{end}}
        </tr>
        <tr>
            {{range .Pillars}}<td class="element-{{.Element}}">{{.Element}}</td>{{end}}
        </tr>
    </table>

    <main class="report-content">
{{.Content}}
    </main>

    <footer class="report-footer">
        Generated by BaZi Report Generator — for entertainment and reflection.
        &copy; {{.CurrentYear}}
    </footer>
</div>
</body>
</html>
`
