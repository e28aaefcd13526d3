package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that emits a structured log line for
// every LLM request, including latency, token usage and an estimated
// cost when the model is in the pricing table.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	// Full request bodies only at debug level.
	if ce := l.log.Check(zap.DebugLevel, "llm request body"); ce != nil {
		ce.Write(
			zap.String("purpose", purpose),
			zap.String("request", serializeRequest(req)),
		)
	}

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", purpose),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("served_by", resp.Model),
			zap.String("stop_reason", resp.StopReason),
		)
		cost := LookupCost(resp.Model)
		if cost == nil {
			cost = LookupCost(l.inner.ModelID())
		}
		if cost != nil {
			fields = append(fields,
				zap.Float64("est_cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
		return resp, err
	}
	l.log.Info("llm request", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
