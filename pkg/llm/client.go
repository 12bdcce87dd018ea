package llm

import (
	"context"
	"fmt"

	"bazireport/internal/model"
)

// Narrative is the generated report text in markdown form, together
// with the model that produced it.
type Narrative struct {
	Text  string
	Model string
}

// Client generates a full narrative report from a chart record.
type Client interface {
	Generate(ctx context.Context, chart model.ChartRecord) (*Narrative, error)
}

// Failure categories surfaced to callers. They map 1:1 to the fault
// classes of the generation call; the boundary turns all of them into
// a 503-class response.
const (
	CategoryConnection = "connection error"
	CategoryRateLimit  = "rate limit"
	CategoryAPI        = "api error"
	CategoryEmpty      = "empty response"
)

// ServiceError wraps a generation failure after retries are
// exhausted, or immediately for non-retryable faults.
type ServiceError struct {
	Category string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("narrative generation failed (%s): %v", e.Category, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
