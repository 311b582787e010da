package catalog

import "testing"

func TestDiscountPct(t *testing.T) {
	if d := DiscountPct(1000, 600); d == nil || *d != 40 {
		t.Fatalf("expected discount 40 for mrp=1000 price=600, got %v", d)
	}
	if d := DiscountPct(500, 500); d != nil {
		t.Fatalf("expected no discount when price equals mrp, got %d", *d)
	}
	if d := DiscountPct(0, 100); d != nil {
		t.Fatalf("expected no discount when mrp is missing, got %d", *d)
	}
	if d := DiscountPct(100, 120); d != nil {
		t.Fatalf("expected no discount when price exceeds mrp, got %d", *d)
	}
}

func TestDiscountPctRounds(t *testing.T) {
	// 100 * (900-601)/900 = 33.22 -> 33
	if d := DiscountPct(900, 601); d == nil || *d != 33 {
		t.Fatalf("expected rounded discount 33, got %v", d)
	}
}

func TestListingLabelThresholds(t *testing.T) {
	label, labelType := listingLabel(50)
	if label != "Min. 50% Off" || labelType != "deal" {
		t.Fatalf("unexpected label at 50: %q/%q", label, labelType)
	}

	label, labelType = listingLabel(49)
	if label != "49% Off" || labelType != "discount" {
		t.Fatalf("unexpected label at 49: %q/%q", label, labelType)
	}

	label, labelType = listingLabel(0)
	if label != "" || labelType != "" {
		t.Fatalf("expected no label at 0, got %q/%q", label, labelType)
	}
}

func TestDealLabelTiers(t *testing.T) {
	if _, labelType := dealLabel(70); labelType != "mega-offer" {
		t.Fatalf("expected mega-offer at 70, got %q", labelType)
	}
	if _, labelType := dealLabel(69); labelType != "hot-offer" {
		t.Fatalf("expected hot-offer at 69, got %q", labelType)
	}
	if _, labelType := dealLabel(60); labelType != "hot-offer" {
		t.Fatalf("expected hot-offer at 60, got %q", labelType)
	}
	if _, labelType := dealLabel(55); labelType != "offer" {
		t.Fatalf("expected offer below 60, got %q", labelType)
	}
}
