package apperr

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
)

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("failed to update ledger: %w", NotFound("ledger", "abc"))

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected wrapped NotFound to match ErrNotFound")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("NotFound must not match ErrValidation")
	}
	if got := KindOf(err); got != KindNotFound {
		t.Errorf("KindOf = %s, want %s", got, KindNotFound)
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindInternal {
		t.Errorf("KindOf(plain) = %s, want %s", got, KindInternal)
	}
}

func TestToConnect(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", NotFound("person", "p1"), connect.CodeNotFound},
		{"validation", Validation("name is required"), connect.CodeInvalidArgument},
		{"ownership", Ownership("group", "g1"), connect.CodePermissionDenied},
		{"unauthenticated", Unauthenticated(nil), connect.CodeUnauthenticated},
		{"internal", errors.New("disk on fire"), connect.CodeInternal},
		{"wrapped", fmt.Errorf("outer: %w", Validation("bad")), connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := connect.CodeOf(ToConnect(tt.err))
			if got != tt.want {
				t.Errorf("CodeOf(ToConnect(%v)) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestToConnectPassesThroughConnectErrors(t *testing.T) {
	original := connect.NewError(connect.CodeAlreadyExists, errors.New("dup"))
	if got := ToConnect(original); got != original {
		t.Errorf("ToConnect changed an existing connect error: %v", got)
	}
	if ToConnect(nil) != nil {
		t.Error("ToConnect(nil) should be nil")
	}
}
