package services

import (
	"testing"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

func TestSpendableBudget(t *testing.T) {
	tests := []struct {
		points int64
		want   int64
	}{
		{0, 0},
		{1000, 1500},
		{100, 150},
		{1, 1}, // floor(1.5)
		{333, 499},
	}
	for _, tt := range tests {
		if got := SpendableBudget(tt.points); got != tt.want {
			t.Errorf("SpendableBudget(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestTotalCommitted(t *testing.T) {
	items := []*models.Item{
		{Price: 300, Quantity: 2, Phase: models.Listed()},
		{Price: 100, Quantity: 1, Phase: models.Collected()}, // collected still counts
		{Price: 999, Quantity: 5, Phase: models.Flagged()},   // not on the list
		{Price: 50, Quantity: 4, Phase: models.Checking()},
	}
	if got := TotalCommitted(items); got != 700 {
		t.Fatalf("TotalCommitted = %d, want 700", got)
	}
}

func TestRemaining(t *testing.T) {
	t.Run("points=1000 with one 300×2 item leaves 900", func(t *testing.T) {
		items := []*models.Item{{Price: 300, Quantity: 2, Phase: models.Listed()}}
		if got := Remaining(1000, items); got != 900 {
			t.Fatalf("Remaining = %d, want 900", got)
		}
	})

	t.Run("may go negative without clamping", func(t *testing.T) {
		items := []*models.Item{{Price: 200, Quantity: 1, Phase: models.Listed()}}
		if got := Remaining(100, items); got != -50 {
			t.Fatalf("Remaining = %d, want -50", got)
		}
	})
}
