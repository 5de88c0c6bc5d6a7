package operator

import (
	"context"

	"github.com/JrMarcco/shipsync/internal/errs"
)

type contextKey struct{}

// WithOperator 把操作人写入 context
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, contextKey{}, operator)
}

// Extract 从 context 中获取操作人
func Extract(ctx context.Context) (string, error) {
	val := ctx.Value(contextKey{})
	if val == nil {
		return "", errs.ErrOperatorNotFound
	}
	if val, ok := val.(string); ok && val != "" {
		return val, nil
	}
	return "", errs.ErrOperatorNotFound
}
