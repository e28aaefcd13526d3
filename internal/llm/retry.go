package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider decorates a Provider with exponential backoff on
// transient failures. Budget and pacing come from RetryConfig.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p so transient errors are retried up to
// cfg.MaxAttempts total calls.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	// A malformed-but-delivered response gets exactly one more try;
	// a second bad reply means the prompt, not luck, is the problem.
	invalidLeft := 1

	var lastErr error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidLeft) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, invalidLeft *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// The request asked for too little room; asking again with the
		// same MaxTokens truncates again.
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidLeft == 0 {
			return false
		}
		*invalidLeft--
		return true
	}

	// Rate limits, 5xx, and plain network errors are all transient.
	return true
}

// wait computes the pause before the next attempt: the provider's own
// Retry-After when a rate limit supplied one, otherwise capped
// exponential backoff with 20% jitter either way.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	backoff := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	backoff = math.Min(backoff, float64(r.cfg.MaxWait))
	backoff += backoff * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(backoff, 0))
}
