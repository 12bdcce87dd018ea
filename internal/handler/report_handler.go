package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bazireport/internal/model"
	"bazireport/pkg/bazi"
	"bazireport/pkg/llm"
	"bazireport/pkg/report"
)

type ChartFetcher interface {
	Fetch(ctx context.Context, birthDate, birthTime, location, gender string) (model.ChartRecord, error)
	HealthCheck(ctx context.Context) bool
}

type ReportRenderer interface {
	Render(chart model.ChartRecord, narrative string, display report.Display) (*report.Artifact, error)
}

type ReportStore interface {
	SaveReport(report *model.Report) error
	GetReports(limit, offset int) ([]model.Report, error)
	GetReportTotal() (int, error)
}

// ReportHandler drives the request pipeline: validate, fetch chart,
// generate narrative, render artifacts. Each stage's typed error maps
// to its own response category; a failed stage stops the chain.
type ReportHandler struct {
	charts     ChartFetcher
	narratives llm.Client
	renderer   ReportRenderer
	store      ReportStore
}

func NewReportHandler(charts ChartFetcher, narratives llm.Client, renderer ReportRenderer, store ReportStore) *ReportHandler {
	return &ReportHandler{
		charts:     charts,
		narratives: narratives,
		renderer:   renderer,
		store:      store,
	}
}

func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if verr := req.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"message": verr.Message,
			"detail":  verr.Field,
		})
		return
	}

	ctx := c.Request.Context()

	slog.Info("fetching chart", "birth_date", req.BirthDate, "birth_time", req.BirthTime, "location", req.Location)

	chart, err := h.charts.Fetch(ctx, req.BirthDate, req.BirthTime, req.Location, req.Gender)
	if err != nil {
		h.writeError(c, err)
		return
	}

	slog.Info("chart received", "eight_chars", chart.EightChars())

	narrative, err := h.narratives.Generate(ctx, chart)
	if err != nil {
		h.writeError(c, err)
		return
	}

	missing := llm.VerifySections(narrative.Text)
	sectionsComplete := len(missing) == 0
	if sectionsComplete {
		slog.Info("all report sections verified")
	} else {
		slog.Warn("report sections missing, forwarding partial content", "missing", missing)
	}

	artifact, err := h.renderer.Render(chart, narrative.Text, report.Display{
		Name:      req.DisplayName(),
		Location:  req.Location,
		Gender:    req.Gender,
		BirthTime: req.BirthTime,
		Format:    req.OutputFormat,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	slog.Info("report saved", "report_id", artifact.ID)

	record := &model.Report{
		ReportID:        artifact.ID,
		BirthDate:       req.BirthDate,
		BirthTime:       req.BirthTime,
		Location:        req.Location,
		Gender:          req.Gender,
		EightChars:      chart.EightChars(),
		DayMaster:       chart.DayMaster(),
		Zodiac:          chart.Zodiac(),
		SolarDate:       chart.SolarDate(),
		MissingSections: missing,
		ModelUsed:       narrative.Model,
	}
	if err := h.store.SaveReport(record); err != nil {
		// The files on disk are the product; a lost metadata row is
		// not worth failing the request over.
		slog.Error("error saving report metadata", "report_id", artifact.ID, "error", err)
	}

	files := FilesResponse{PDF: artifact.PDFPath}
	if req.OutputFormat != report.FormatPDF {
		files.HTML = artifact.HTMLPath
	}

	c.JSON(http.StatusOK, GenerateReportResponse{
		Success:  true,
		ReportID: artifact.ID,
		Files:    files,
		BaziSummary: BaziSummary{
			EightChars: chart.EightChars(),
			DayMaster:  chart.DayMaster(),
			Zodiac:     chart.Zodiac(),
			SolarDate:  chart.SolarDate(),
		},
		SectionsVerified: sectionsComplete,
		MissingSections:  missing,
		Message:          "Report generated successfully",
	})
}

func (h *ReportHandler) GetBaziOnly(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if verr := req.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"message": verr.Message,
			"detail":  verr.Field,
		})
		return
	}

	chart, err := h.charts.Fetch(c.Request.Context(), req.BirthDate, req.BirthTime, req.Location, req.Gender)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"bazi_data": chart,
	})
}

func (h *ReportHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.charts.HealthCheck(ctx) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "BaZi report generator is running, chart server connected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "degraded",
		"message": "chart server not reachable",
	})
}

func (h *ReportHandler) GetReports(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	reports, err := h.store.GetReports(limit, offset)
	if err != nil {
		slog.Error("error fetching report history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.store.GetReportTotal()
	if err != nil {
		slog.Error("error fetching report total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]ReportHistoryItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, ReportHistoryItem{
			ReportID:        r.ReportID,
			BirthDate:       r.BirthDate,
			BirthTime:       r.BirthTime,
			Location:        r.Location,
			Gender:          r.Gender,
			EightChars:      r.EightChars,
			Zodiac:          r.Zodiac,
			MissingSections: r.MissingSections,
			ModelUsed:       r.ModelUsed,
			CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, ReportHistoryResponse{
		Reports: items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// writeError maps each component's typed error to its response
// category. Anything unrecognized is an internal error.
func (h *ReportHandler) writeError(c *gin.Context, err error) {
	var chartErr *bazi.ServiceError
	if errors.As(err, &chartErr) {
		slog.Error("chart service error", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "BaZi calculation service unavailable",
			"message": chartErr.Message,
		})
		return
	}

	var genErr *llm.ServiceError
	if errors.As(err, &genErr) {
		slog.Error("narrative service error", "category", genErr.Category, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Report generation failed",
			"message": genErr.Category,
		})
		return
	}

	var renderErr *report.RenderError
	if errors.As(err, &renderErr) {
		slog.Error("rendering error", "stage", renderErr.Stage, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "File generation failed",
			"message": renderErr.Stage,
		})
		return
	}

	slog.Error("unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": "unexpected failure",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)
	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		return 0
	}
	return offset
}
