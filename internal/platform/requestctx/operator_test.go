package requestctx

import (
	"context"
	"testing"
)

func TestOperatorIDFromContextRoundTrip(t *testing.T) {
	ctx := WithOperatorID(context.Background(), "op-42")
	if got := OperatorIDFromContext(ctx); got != "op-42" {
		t.Fatalf("OperatorIDFromContext = %q, want %q", got, "op-42")
	}
}

func TestOperatorIDFromContextEmpty(t *testing.T) {
	if got := OperatorIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestOperatorIDFromContextNil(t *testing.T) {
	if got := OperatorIDFromContext(nil); got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithOperatorIDNilContext(t *testing.T) {
	ctx := WithOperatorID(nil, "op-99")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if got := OperatorIDFromContext(ctx); got != "op-99" {
		t.Fatalf("OperatorIDFromContext = %q, want %q", got, "op-99")
	}
}

func TestOperatorRoleRoundTrip(t *testing.T) {
	ctx := WithOperatorRole(context.Background(), "admin")
	if got := OperatorRoleFromContext(ctx); got != "admin" {
		t.Fatalf("OperatorRoleFromContext = %q, want %q", got, "admin")
	}
	if got := OperatorRoleFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty role, got %q", got)
	}
}
