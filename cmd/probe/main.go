package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"bazireport/pkg/bazi"

	"github.com/joho/godotenv"
)

// Smoke probe for the chart server: checks health, then fetches a
// sample chart and prints it. Useful when wiring up a new deployment.
func main() {

	godotenv.Load()

	chartServerURL := os.Getenv("CHART_SERVER_URL")
	if chartServerURL == "" {
		chartServerURL = "http://localhost:3000"
	}

	client := bazi.NewClient(chartServerURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !client.HealthCheck(ctx) {
		log.Fatalf("chart server not reachable at %s", chartServerURL)
	}
	slog.Info("chart server healthy", "url", chartServerURL)

	chart, err := client.Fetch(ctx, "1990-05-15", "14:30", "Karachi, Pakistan", "male")
	if err != nil {
		log.Fatalf("error fetching sample chart: %v", err)
	}

	slog.Info("sample chart fetched",
		"eight_chars", chart.EightChars(),
		"day_master", chart.DayMaster(),
		"zodiac", chart.Zodiac())

	out, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		log.Fatalf("error encoding chart: %v", err)
	}
	os.Stdout.Write(append(out, '\n'))
}
