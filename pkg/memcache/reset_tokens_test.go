package mem

import (
	"testing"
	"time"
)

func TestResetTokenSingleUse(t *testing.T) {
	store := NewResetTokenStore(time.Minute)
	store.Set("tok", "account-1")

	accountID, ok := store.Consume("tok")
	if !ok || accountID != "account-1" {
		t.Fatalf("expected first consume to succeed, got ok=%v id=%s", ok, accountID)
	}
	if _, ok := store.Consume("tok"); ok {
		t.Error("expected second consume to fail")
	}
}

func TestResetTokenExpiry(t *testing.T) {
	store := NewResetTokenStore(time.Minute)
	now := time.Now()
	store.nowFunc = func() time.Time { return now }
	store.Set("tok", "account-1")

	store.nowFunc = func() time.Time { return now.Add(2 * time.Minute) }
	if _, ok := store.Consume("tok"); ok {
		t.Error("expected expired token to be rejected")
	}
}

func TestResetTokenUnknown(t *testing.T) {
	store := NewResetTokenStore(time.Minute)
	if _, ok := store.Consume("missing"); ok {
		t.Error("expected unknown token to be rejected")
	}
}
