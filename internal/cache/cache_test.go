package cache

import (
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	InitMemory()
	c := Get()

	if err := c.Set("session:user-1:s1", "token", time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value, err := c.Get("session:user-1:s1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "token" {
		t.Errorf("expected value[token], got %s", value)
	}

	if err := c.Del("session:user-1:s1"); err != nil {
		t.Fatalf("Del returned error: %v", err)
	}
	if _, err := c.Get("session:user-1:s1"); err == nil {
		t.Errorf("expected a deleted key to be gone")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	InitMemory()
	c := Get()

	if err := c.Set("expiring", "value", -time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := c.Get("expiring"); err == nil {
		t.Errorf("expected an expired key to be gone")
	}
}

func TestMemoryCacheScan(t *testing.T) {
	InitMemory()
	c := Get()

	c.Set("session:user-1:s1", "a", time.Minute)
	c.Set("session:user-1:s2", "b", time.Minute)
	c.Set("session:user-2:s3", "c", time.Minute)

	keys, err := c.Scan("session:user-1:")
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %d", len(keys))
	}
}
