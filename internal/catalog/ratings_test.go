package catalog

import (
	"testing"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/models"
)

func TestFoldRatingsComputesCountAndAverage(t *testing.T) {
	summaries := foldRatings([]models.Rating{
		{ProductID: "p1", Rating: 3, Approved: true},
		{ProductID: "p1", Rating: 5, Approved: true},
		{ProductID: "p2", Rating: 4, Approved: true},
	})

	p1 := summaries["p1"]
	if p1.Count != 2 {
		t.Fatalf("expected count 2 for p1, got %d", p1.Count)
	}
	if p1.Average != 4 {
		t.Fatalf("expected average 4 for p1, got %v", p1.Average)
	}

	p2 := summaries["p2"]
	if p2.Count != 1 || p2.Average != 4 {
		t.Fatalf("unexpected summary for p2: %+v", p2)
	}
}

func TestFoldRatingsZeroValueForUnratedProduct(t *testing.T) {
	summaries := foldRatings(nil)
	missing := summaries["never-rated"]
	if missing.Count != 0 || missing.Average != 0 {
		t.Fatalf("expected zero summary for unrated product, got %+v", missing)
	}
}
