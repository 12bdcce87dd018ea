package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bazireport/internal/model"
)

// Output formats a caller can request.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatBoth = "both"
)

// RenderError wraps any failure in the rendering pipeline with the
// stage it happened in. Files already written before the failure are
// left in place; the artifact id is simply never returned.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering failed at %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Display carries the caller-supplied fields merged into the
// presentation template alongside the chart.
type Display struct {
	Name      string
	Location  string
	Gender    string
	BirthTime string
	Format    string
}

// Artifact locates the files written for one report. Paths are the
// caller-facing relative paths under the static mount.
type Artifact struct {
	ID       string
	HTMLPath string
	PDFPath  string
	DataPath string
}

// Generator renders narratives into HTML/PDF artifacts on disk.
type Generator struct {
	baseDir string

	// Overridable in tests; defaults write a real PDF and mint
	// random ids.
	newID     func() string
	renderPDF func(html, outPath string) error
}

func NewGenerator(baseDir string) (*Generator, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}

	return &Generator{
		baseDir:   baseDir,
		newID:     shortID,
		renderPDF: writePDF,
	}, nil
}

// Short token for cleaner URLs; collisions are not a practical
// concern at this volume.
func shortID() string {
	return uuid.NewString()[:8]
}

// buildDocument converts the narrative markup, inserts the element
// diagram and merges everything into the presentation template.
// Deterministic for fixed inputs within a calendar year.
func buildDocument(chart model.ChartRecord, narrative string, display Display) (string, error) {
	contentHTML, err := convertMarkdown(narrative)
	if err != nil {
		return "", &RenderError{Stage: "markdown conversion", Err: err}
	}

	contentHTML = insertDiagram(contentHTML)

	data := templateData{
		Name:        display.Name,
		Location:    display.Location,
		Gender:      display.Gender,
		BirthTime:   display.BirthTime,
		EightChars:  chart.EightChars(),
		DayMaster:   chart.DayMaster(),
		Zodiac:      chart.Zodiac(),
		BirthDate:   chart.SolarDate(),
		Pillars:     extractPillars(chart),
		Content:     template.HTML(contentHTML),
		CurrentYear: time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", &RenderError{Stage: "template merge", Err: err}
	}

	return buf.String(), nil
}

// Render produces the artifact bundle for one report: the HTML
// document, its PDF derivative (unless format is html) and a raw
// chart snapshot.
func (g *Generator) Render(chart model.ChartRecord, narrative string, display Display) (*Artifact, error) {
	doc, err := buildDocument(chart, narrative, display)
	if err != nil {
		return nil, asRenderError(err)
	}

	id := g.newID()
	dir := filepath.Join(g.baseDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &RenderError{Stage: "artifact directory", Err: err}
	}

	htmlFile := filepath.Join(dir, "report.html")
	if err := os.WriteFile(htmlFile, []byte(doc), 0o644); err != nil {
		return nil, &RenderError{Stage: "html write", Err: err}
	}

	artifact := &Artifact{
		ID:       id,
		HTMLPath: fmt.Sprintf("/reports/%s/report.html", id),
	}

	if display.Format != FormatHTML {
		pdfFile := filepath.Join(dir, "report.pdf")
		if err := g.renderPDF(doc, pdfFile); err != nil {
			return nil, &RenderError{Stage: "pdf conversion", Err: err}
		}
		artifact.PDFPath = fmt.Sprintf("/reports/%s/report.pdf", id)
	}

	snapshot, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		return nil, &RenderError{Stage: "data snapshot", Err: err}
	}
	if err := os.WriteFile(filepath.Join(dir, "data.json"), snapshot, 0o644); err != nil {
		return nil, &RenderError{Stage: "data snapshot", Err: err}
	}
	artifact.DataPath = fmt.Sprintf("/reports/%s/data.json", id)

	return artifact, nil
}

func asRenderError(err error) error {
	if _, ok := err.(*RenderError); ok {
		return err
	}
	return &RenderError{Stage: "render", Err: err}
}
