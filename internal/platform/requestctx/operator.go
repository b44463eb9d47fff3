// Package requestctx carries authenticated request identity through context.
package requestctx

import "context"

// operatorIDContextKey is the context key for the authenticated operator.
type operatorIDContextKey struct{}

// operatorRoleContextKey is the context key for the operator role.
type operatorRoleContextKey struct{}

// WithOperatorID stores an operator identifier in context.
func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, operatorIDContextKey{}, operatorID)
}

// OperatorIDFromContext returns the operator identifier stored in context.
func OperatorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(operatorIDContextKey{}).(string)
	return value
}

// WithOperatorRole stores the operator role in context.
func WithOperatorRole(ctx context.Context, role string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, operatorRoleContextKey{}, role)
}

// OperatorRoleFromContext returns the operator role stored in context.
func OperatorRoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(operatorRoleContextKey{}).(string)
	return value
}
