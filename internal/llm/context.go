package llm

import "context"

// Purpose labels why a request was made. It is logged and stored with every
// recorded request so usage can be broken down per purpose.
type Purpose string

const (
	// PurposeQuestionBatch is a request for a batch of swipe cards.
	PurposeQuestionBatch Purpose = "question-batch"

	PurposeUnknown Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx with the purpose of the requests made under it.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the purpose set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
