package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
	"tasklist/internal/repository/memory"
)

func TestOwnerBasedAuthorizer_CanWriteToList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	list := models.List{OwnerID: "alice", Title: "mine"}
	if err := store.Lists().Create(ctx, &list); err != nil {
		t.Fatalf("create list: %v", err)
	}

	authz := NewOwnerBasedAuthorizer(store.Items(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name    string
		ownerID string
		listID  int64
		wantErr bool
	}{
		{"owner", "alice", list.ID, false},
		{"other owner", "bob", list.ID, true},
		{"missing list", "alice", list.ID + 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.CanWriteToList(ctx, tt.ownerID, tt.listID)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrOwnershipViolation) || !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("err = %v, want an ownership violation", err)
			}
			var violation *domain.OwnershipViolationError
			if !errors.As(err, &violation) || violation.ListID != tt.listID || violation.OwnerID != tt.ownerID {
				t.Fatalf("violation = %+v", violation)
			}
		})
	}
}
