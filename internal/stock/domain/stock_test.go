package domain

import (
	"testing"
)

func TestDeriveStatus(t *testing.T) {
	sticky := DefaultStickySet()

	tests := []struct {
		name    string
		total   float64
		current string
		sticky  StickySet
		want    string
	}{
		{
			name:    "zero quantity is out",
			total:   0,
			current: StatusAvailable,
			sticky:  sticky,
			want:    StatusOut,
		},
		{
			name:    "zero quantity overrides sticky status",
			total:   0,
			current: StatusProcessing,
			sticky:  sticky,
			want:    StatusOut,
		},
		{
			name:    "below threshold is low",
			total:   99.99,
			current: StatusAvailable,
			sticky:  sticky,
			want:    StatusLow,
		},
		{
			name:    "at threshold is available",
			total:   100,
			current: StatusLow,
			sticky:  sticky,
			want:    StatusAvailable,
		},
		{
			name:    "above threshold is available",
			total:   500,
			current: StatusOut,
			sticky:  sticky,
			want:    StatusAvailable,
		},
		{
			name:    "sticky status preserved while stock remains",
			total:   50,
			current: StatusProcessing,
			sticky:  sticky,
			want:    StatusProcessing,
		},
		{
			name:    "quality_check is not sticky by default",
			total:   50,
			current: StatusQualityCheck,
			sticky:  sticky,
			want:    StatusLow,
		},
		{
			name:    "quality_check preserved when added to sticky set",
			total:   250,
			current: StatusQualityCheck,
			sticky:  StickySet{StatusProcessing: true, StatusQualityCheck: true},
			want:    StatusQualityCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.total, tt.current, tt.sticky)
			if got != tt.want {
				t.Errorf("DeriveStatus(%v, %q) = %q, want %q", tt.total, tt.current, got, tt.want)
			}
		})
	}
}

func TestStickySetFromEnv(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		t.Setenv("STOCK_STICKY_STATUSES", "")
		set := StickySetFromEnv()
		if !set[StatusProcessing] {
			t.Error("default sticky set should include processing")
		}
		if set[StatusQualityCheck] {
			t.Error("default sticky set should not include quality_check")
		}
	})

	t.Run("parses comma separated list", func(t *testing.T) {
		t.Setenv("STOCK_STICKY_STATUSES", "processing, quality_check")
		set := StickySetFromEnv()
		if !set[StatusProcessing] || !set[StatusQualityCheck] {
			t.Errorf("sticky set = %v, want processing and quality_check", set)
		}
	})
}

func TestStockLotTotalQuantity(t *testing.T) {
	lot := &StockLot{
		Variants: []StockVariant{
			{Color: "Red", Quantity: 120.5},
			{Color: "Blue", Quantity: 79.5},
		},
	}

	if got := lot.TotalQuantity(); got != 200 {
		t.Errorf("TotalQuantity() = %v, want 200", got)
	}
}

func TestStockLotVariantByColor(t *testing.T) {
	lot := &StockLot{
		Variants: []StockVariant{
			{Color: "Red", Quantity: 100},
			{Color: "Blue", Quantity: 50},
		},
	}

	v := lot.VariantByColor("Blue")
	if v == nil || v.Quantity != 50 {
		t.Fatalf("VariantByColor(Blue) = %+v, want quantity 50", v)
	}

	// Returned pointer must alias the lot so callers can mutate in place
	v.Quantity = 75
	if lot.Variants[1].Quantity != 75 {
		t.Error("VariantByColor should return a pointer into the lot")
	}

	if lot.VariantByColor("Green") != nil {
		t.Error("VariantByColor for unknown color should return nil")
	}
}

func TestStockLotRecomputeStatus(t *testing.T) {
	lot := &StockLot{
		Status: StatusAvailable,
		Variants: []StockVariant{
			{Color: "Red", Quantity: 40},
		},
	}

	lot.RecomputeStatus(DefaultStickySet())
	if lot.Status != StatusLow {
		t.Errorf("status = %q, want %q", lot.Status, StatusLow)
	}

	lot.Variants[0].Quantity = 0
	lot.RecomputeStatus(DefaultStickySet())
	if lot.Status != StatusOut {
		t.Errorf("status = %q, want %q", lot.Status, StatusOut)
	}
}
