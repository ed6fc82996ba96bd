package memory

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_MissReturnsErrNotFound(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	_, err := cache.Get(context.Background(), "absent")

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on miss = %v, want ErrNotFound", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after TTL = %v, want ErrNotFound", err)
	}
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	original := []byte("value")
	cache.Set(ctx, "key", original, time.Minute)
	original[0] = 'X'

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("stored value was mutated through the caller's slice: %q", got)
	}

	got[0] = 'Y'
	again, _ := cache.Get(ctx, "key")
	if string(again) != "value" {
		t.Errorf("stored value was mutated through a returned slice: %q", again)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err == nil {
		t.Error("Set should fail with a cancelled context")
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail with a cancelled context")
	}
}
