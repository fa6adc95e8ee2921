package authz

import (
	"context"
	"errors"
	"testing"
)

func TestUserFromContextRoundTrip(t *testing.T) {
	user := &AuthUser{ID: 7, Username: "scout", ClubID: 3, ClubName: "Rovers"}
	ctx := ContextWithUser(context.Background(), user)

	got := UserFromContext(ctx)
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.ID != 7 || got.ClubID != 3 {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserFromContextMissing(t *testing.T) {
	if user := UserFromContext(context.Background()); user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
	if user := UserFromContext(nil); user != nil {
		t.Fatalf("expected nil user for nil ctx, got %+v", user)
	}
}

func TestRequireUser(t *testing.T) {
	_, err := RequireUser(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	ctx := ContextWithUser(context.Background(), &AuthUser{ID: 1, ClubID: 1})
	user, err := RequireUser(ctx)
	if err != nil {
		t.Fatalf("require user: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("unexpected user: %+v", user)
	}
}
