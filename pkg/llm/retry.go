package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/cenkalti/backoff/v5"
	"github.com/openai/openai-go"
)

// retryPolicy bounds the generation call: up to maxTries attempts
// with exponential backoff between them.
type retryPolicy struct {
	initialInterval time.Duration
	maxInterval     time.Duration
	maxTries        uint
}

var defaultRetryPolicy = retryPolicy{
	initialInterval: 2 * time.Second,
	maxInterval:     10 * time.Second,
	maxTries:        3,
}

// generateWithRetry runs call under the retry policy. Only
// connectivity failures, rate-limit rejections and upstream server
// faults are retried; everything else fails on the first attempt.
func generateWithRetry(ctx context.Context, p retryPolicy, call func() (string, error)) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxInterval = p.maxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0

	attempt := 0
	operation := func() (string, error) {
		attempt++
		text, err := call()
		if err != nil && !isRetryable(err) {
			return "", backoff.Permanent(err)
		}
		return text, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(p.maxTries),
		backoff.WithNotify(func(err error, wait time.Duration) {
			slog.Warn("narrative generation failed, retrying",
				"wait", wait, "attempt", attempt, "max_attempts", p.maxTries, "error", err)
		}),
	)
}

func sdkStatus(err error) (int, bool) {
	var anthErr *anthropic.Error
	if errors.As(err, &anthErr) {
		return anthErr.StatusCode, true
	}
	var oaiErr *openai.Error
	if errors.As(err, &oaiErr) {
		return oaiErr.StatusCode, true
	}
	return 0, false
}

func isRetryable(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		// Already classified (e.g. empty response): hard failure.
		return false
	}

	if status, ok := sdkStatus(err); ok {
		return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
	}

	// No HTTP status at all means the request never completed.
	return true
}

// classify turns the final error of a generation call into the
// caller-facing ServiceError.
func classify(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	if status, ok := sdkStatus(err); ok {
		if status == http.StatusTooManyRequests {
			return &ServiceError{Category: CategoryRateLimit, Err: err}
		}
		return &ServiceError{Category: CategoryAPI, Err: err}
	}

	return &ServiceError{Category: CategoryConnection, Err: err}
}
