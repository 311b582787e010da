package cache

import (
	"testing"
	"time"
)

func TestGetReturnsValueBeforeExpiry(t *testing.T) {
	current := time.Unix(1000, 0)
	store := NewWithClock(func() time.Time { return current })

	store.Set("k", "v", time.Second)

	value, ok := store.Get("k")
	if !ok {
		t.Fatal("expected cache hit immediately after set")
	}
	if value != "v" {
		t.Fatalf("expected v, got %v", value)
	}
}

func TestGetMissesAfterTTLElapses(t *testing.T) {
	current := time.Unix(1000, 0)
	store := NewWithClock(func() time.Time { return current })

	store.Set("k", "v", time.Second)
	current = current.Add(2 * time.Second)

	if _, ok := store.Get("k"); ok {
		t.Fatal("expected cache miss after TTL elapsed")
	}
}

func TestGetMissesOnUnknownKey(t *testing.T) {
	store := New()
	if _, ok := store.Get("never-set"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestSetOverwritesExistingEntry(t *testing.T) {
	current := time.Unix(1000, 0)
	store := NewWithClock(func() time.Time { return current })

	store.Set("k", "old", time.Second)
	store.Set("k", "new", time.Minute)
	current = current.Add(30 * time.Second)

	value, ok := store.Get("k")
	if !ok {
		t.Fatal("expected hit after overwrite with longer TTL")
	}
	if value != "new" {
		t.Fatalf("expected overwritten value, got %v", value)
	}
}

func TestKeyIsStableAcrossCalls(t *testing.T) {
	params := map[string]interface{}{"limit": 20, "offset": 0, "fastDelivery": "false"}
	first := Key("products", params)
	second := Key("products", map[string]interface{}{"fastDelivery": "false", "offset": 0, "limit": 20})
	if first != second {
		t.Fatalf("expected identical keys, got %q and %q", first, second)
	}
}

func TestKeyDiffersWhenParamsDiffer(t *testing.T) {
	base := Key("products", map[string]interface{}{"limit": 20, "fastDelivery": "false"})
	other := Key("products", map[string]interface{}{"limit": 20, "fastDelivery": "true"})
	if base == other {
		t.Fatalf("expected different keys for different fastDelivery values, got %q", base)
	}
}

func TestKeyDiffersAcrossScopes(t *testing.T) {
	if Key("products", nil) == Key("deals", nil) {
		t.Fatal("expected scope to separate keys")
	}
}
