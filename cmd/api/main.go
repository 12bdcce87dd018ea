package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"bazireport/db"
	"bazireport/internal/handler"
	"bazireport/internal/repository"
	"bazireport/pkg/bazi"
	"bazireport/pkg/llm"
	"bazireport/pkg/report"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	defaultChartServerURL = "http://localhost:3000"
	defaultReportsDir     = "reports"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	chartServerURL := os.Getenv("CHART_SERVER_URL")
	if chartServerURL == "" {
		chartServerURL = defaultChartServerURL
	}
	chartClient := bazi.NewClient(chartServerURL)

	narrator, err := newNarrativeClient()
	if err != nil {
		log.Fatalf("error configuring narrative client: %v", err)
	}

	reportsDir := os.Getenv("REPORTS_DIR")
	if reportsDir == "" {
		reportsDir = defaultReportsDir
	}
	generator, err := report.NewGenerator(reportsDir)
	if err != nil {
		log.Fatalf("error preparing reports directory: %v", err)
	}

	reportRepo := repository.NewReportRepository(db.DB)
	reportHandler := handler.NewReportHandler(chartClient, narrator, generator, reportRepo)

	runStartupChecks(chartClient, chartServerURL)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	generateLimit := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	baziLimit := gin.HandlerFunc(func(c *gin.Context) { c.Next() })

	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, rate limiting disabled", "error", err)
	} else {
		defer db.CloseRedis()
		counter := db.NewRateCounter(db.Redis)
		generateLimit = handler.RateLimit(counter, "generate", 10, time.Hour)
		baziLimit = handler.RateLimit(counter, "bazi", 30, time.Hour)
	}

	r.GET("/", getRoot)
	r.POST("/api/generate-report", generateLimit, reportHandler.GenerateReport)
	r.POST("/api/bazi-only", baziLimit, reportHandler.GetBaziOnly)
	r.GET("/api/reports", reportHandler.GetReports)
	r.GET("/api/health", reportHandler.GetHealth)
	r.Static("/reports", reportsDir)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newNarrativeClient picks the narrative provider from the
// environment. Anthropic is the default.
func newNarrativeClient() (llm.Client, error) {
	provider := os.Getenv("NARRATIVE_PROVIDER")
	modelName := os.Getenv("NARRATIVE_MODEL")

	switch provider {
	case "openai":
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), modelName), nil
	case "", "anthropic":
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), modelName), nil
	}
	return nil, &unknownProviderError{provider}
}

type unknownProviderError struct {
	provider string
}

func (e *unknownProviderError) Error() string {
	return "unknown narrative provider: " + e.provider
}

// runStartupChecks logs what is and is not reachable so a
// misconfigured deployment is obvious from the first lines of output.
func runStartupChecks(charts *bazi.Client, chartServerURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if charts.HealthCheck(ctx) {
		slog.Info("chart server reachable", "url", chartServerURL)
	} else {
		slog.Warn("chart server not reachable, report generation will fail until it is up", "url", chartServerURL)
	}

	if os.Getenv("ANTHROPIC_API_KEY") == "" && os.Getenv("OPENAI_API_KEY") == "" {
		slog.Warn("no narrative API key configured, set ANTHROPIC_API_KEY or OPENAI_API_KEY")
	}
}

func getRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "BaZi Report Generator",
		"version": "1.0.0",
		"endpoints": gin.H{
			"generate_report": "POST /api/generate-report",
			"bazi_only":       "POST /api/bazi-only",
			"reports":         "GET /api/reports",
			"health":          "GET /api/health",
		},
	})
}
