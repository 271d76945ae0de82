package codes

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code is single use", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.Set(ctx, "ana@example.com", "123456", TTL); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		if err := store.Consume(ctx, "ana@example.com", "123456"); err != nil {
			t.Fatalf("consume failed: %v", err)
		}
		if err := store.Consume(ctx, "ana@example.com", "123456"); err != ErrNoCode {
			t.Fatalf("expected ErrNoCode on reuse, got %v", err)
		}
	})

	t.Run("wrong code does not spend the pending one", func(t *testing.T) {
		store := NewMemoryStore()
		_ = store.Set(ctx, "ana@example.com", "123456", TTL)

		if err := store.Consume(ctx, "ana@example.com", "000000"); err != ErrBadCode {
			t.Fatalf("expected ErrBadCode, got %v", err)
		}
		if err := store.Consume(ctx, "ana@example.com", "123456"); err != nil {
			t.Fatalf("the right code should still work, got %v", err)
		}
	})

	t.Run("expired code is rejected and removed", func(t *testing.T) {
		store := NewMemoryStore()
		_ = store.Set(ctx, "ana@example.com", "123456", TTL)

		store.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }

		if err := store.Consume(ctx, "ana@example.com", "123456"); err != ErrExpired {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
		if err := store.Consume(ctx, "ana@example.com", "123456"); err != ErrNoCode {
			t.Fatalf("expected ErrNoCode after expiry, got %v", err)
		}
	})

	t.Run("unknown email has no code", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.Consume(ctx, "nadie@example.com", "123456"); err != ErrNoCode {
			t.Fatalf("expected ErrNoCode, got %v", err)
		}
	})
}

func TestGenerate(t *testing.T) {
	code := Generate()
	if len(code) != 6 {
		t.Fatalf("expected 6 digits, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only, got %q", code)
		}
	}
}
