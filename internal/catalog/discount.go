package catalog

import (
	"fmt"
	"math"
)

// DiscountPct returns the rounded percentage off the list price, or nil when
// mrp is absent, zero, or not greater than the current price.
func DiscountPct(mrp, price float64) *int {
	if mrp <= 0 || price < 0 || price >= mrp {
		return nil
	}
	d := int(math.Round(100 * (mrp - price) / mrp))
	return &d
}

// listingLabel maps a discount to the general listing badge. The 50% cutoff is
// specific to the listing; the deals feed uses its own thresholds.
func listingLabel(discount int) (label, labelType string) {
	switch {
	case discount >= 50:
		return fmt.Sprintf("Min. %d%% Off", discount), "deal"
	case discount > 0:
		return fmt.Sprintf("%d%% Off", discount), "discount"
	default:
		return "", ""
	}
}

// dealLabel maps a discount to the deals feed badge tiers.
func dealLabel(discount int) (label, labelType string) {
	switch {
	case discount >= 70:
		return "Mega Offer", "mega-offer"
	case discount >= 60:
		return "Hot Offer", "hot-offer"
	default:
		return "Offer", "offer"
	}
}
