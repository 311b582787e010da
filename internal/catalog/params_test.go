package catalog

import "testing"

func TestListingParamsDefaults(t *testing.T) {
	params := NewListingParams("", "", "", "", "", "")
	if params.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", params.Limit)
	}
	if params.Offset != 0 {
		t.Fatalf("expected default offset 0, got %d", params.Offset)
	}
	if params.FastDelivery != "false" {
		t.Fatalf("expected fastDelivery normalized to false, got %q", params.FastDelivery)
	}
	if params.IncludeOutOfStock {
		t.Fatal("expected includeOutOfStock to default to false")
	}
}

func TestListingParamsMalformedInputFallsBackToDefaults(t *testing.T) {
	params := NewListingParams("", "abc", "-5", "maybe", "", "yes")
	if params.Limit != 20 {
		t.Fatalf("expected limit fallback on garbage input, got %d", params.Limit)
	}
	if params.Offset != 0 {
		t.Fatalf("expected offset fallback on negative input, got %d", params.Offset)
	}
	if params.FastDelivery != "false" {
		t.Fatalf("expected non-true fastDelivery to normalize to false, got %q", params.FastDelivery)
	}
	if params.IncludeOutOfStock {
		t.Fatal("expected includeOutOfStock false for non-true value")
	}
}

func TestListingLimitCeiling(t *testing.T) {
	params := NewListingParams("", "9999", "0", "", "", "")
	if params.Limit != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", params.Limit)
	}
}

func TestDealsLimitCeiling(t *testing.T) {
	params := NewDealsParams("", "9999", "0")
	if params.Limit != 50 {
		t.Fatalf("expected deals limit clamped to 50, got %d", params.Limit)
	}
}

func TestDealsParamsDefaults(t *testing.T) {
	params := NewDealsParams("", "", "")
	if params.MinDiscount != 60 {
		t.Fatalf("expected default minDiscount 60, got %d", params.MinDiscount)
	}
	if params.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", params.Limit)
	}
}

func TestListingCacheKeyStable(t *testing.T) {
	a := NewListingParams("", "20", "0", "false", "", "").CacheKey()
	b := NewListingParams("", "20", "0", "", "", "").CacheKey()
	if a != b {
		t.Fatalf("expected unset and explicit-false fastDelivery to share a key, got %q and %q", a, b)
	}
}

func TestListingCacheKeyVariesByFastDelivery(t *testing.T) {
	a := NewListingParams("", "20", "0", "false", "", "").CacheKey()
	b := NewListingParams("", "20", "0", "true", "", "").CacheKey()
	if a == b {
		t.Fatal("expected different keys for different fastDelivery values")
	}
}

func TestListingCacheKeyVariesByCategory(t *testing.T) {
	a := NewListingParams("", "20", "0", "", "electronics", "").CacheKey()
	b := NewListingParams("", "20", "0", "", "fashion", "").CacheKey()
	if a == b {
		t.Fatal("expected different categories to produce different cache keys")
	}
}
