package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", "value", time.Minute)

	got, ok := store.Get(ctx, "key")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != "value" {
		t.Fatalf("unexpected value %q", got)
	}

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", "value", time.Minute)
	store.Delete(ctx, "key")

	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("expected miss after delete")
	}
}
