package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"library-admin/core/interfaces"
	"library-admin/pkg/config"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewRedisCache(config.RedisConfig{Address: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache, mr
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cfg := config.RedisConfig{
		Address:  "", // Empty address
		Password: "",
		DB:       0,
	}

	cache, err := NewRedisCache(cfg)

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cache, err := NewRedisCache(config.RedisConfig{Address: addr})

	if err == nil {
		t.Error("NewRedisCache should fail when the server is unreachable")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache on ping failure")
	}
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	key := "viewstate:books"
	value := []byte(`{"sort_key":"Title"}`)

	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestRedisCache_Get_NonExistentKey(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "non-existent")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get should return ErrCacheMiss, got: %v", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestRedisCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "viewstate:members", []byte("1"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cache.Set(ctx, "viewstate:staff", []byte("2"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if ttl := mr.TTL("viewstate:members"); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}
	if ttl := mr.TTL("viewstate:staff"); ttl != 0 {
		t.Errorf("TTL for zero expiry = %v, want none", ttl)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(ctx, "viewstate:members"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired key should be a miss, got: %v", err)
	}
	if _, err := cache.Get(ctx, "viewstate:staff"); err != nil {
		t.Errorf("key without TTL should survive, got: %v", err)
	}
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "viewstate:books", []byte("x"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := cache.Delete(ctx, "viewstate:books"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if mr.Exists("viewstate:books") {
		t.Error("key should be gone after Delete")
	}

	if err := cache.Delete(ctx, "non-existent"); err != nil {
		t.Errorf("Delete should return nil for non-existent key, got: %v", err)
	}
}
