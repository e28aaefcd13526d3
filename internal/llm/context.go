package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with what this request is for, e.g.
// "question" or "teacher_reply". The logging middleware picks it up.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, or "unknown" for untagged contexts.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
