package domain

import (
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Stock types. The type is fixed at lot creation and never changes.
const (
	StockTypeGray    = "gray"
	StockTypeFactory = "factory"
	StockTypeDesign  = "design"
)

// Stock statuses. available/low/out are derived from the total quantity;
// processing and quality_check are set by operators.
const (
	StatusAvailable    = "available"
	StatusLow          = "low"
	StatusOut          = "out"
	StatusProcessing   = "processing"
	StatusQualityCheck = "quality_check"
)

// LowStockThreshold is the total quantity below which a lot is flagged low
const LowStockThreshold = 100.0

// StockVariant is one (color, quantity, unit) line within a lot
type StockVariant struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	StockLotID uint    `json:"stock_lot_id" gorm:"not null;index"`
	Color      string  `json:"color" gorm:"not null"`
	Quantity   float64 `json:"quantity" gorm:"not null;default:0"`
	Unit       string  `json:"unit" gorm:"default:'METERS'"` // METERS, SETS
}

// TableName specifies the table name
func (StockVariant) TableName() string {
	return "stock_variants"
}

// StockDetails is the per-type payload of a lot. The type-specific fields are
// flattened into one embedded struct; only those matching the lot's stock type
// are meaningful. Product is a denormalized product name, not a foreign key.
type StockDetails struct {
	Product string `json:"product" gorm:"index"`

	// gray
	Factory     string `json:"factory,omitempty"`
	Agent       string `json:"agent,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`

	// factory
	ProcessingFactory  string     `json:"processing_factory,omitempty"`
	ProcessingStage    string     `json:"processing_stage,omitempty"`
	ExpectedCompletion *time.Time `json:"expected_completion,omitempty"`

	// design
	Design    string `json:"design,omitempty"`
	Warehouse string `json:"warehouse,omitempty"`
}

// StockLot represents one physical stock lot
type StockLot struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	StockType      string         `json:"stock_type" gorm:"not null;index"`
	Status         string         `json:"status" gorm:"default:'available';index"`
	Variants       []StockVariant `json:"variants" gorm:"foreignKey:StockLotID;constraint:OnDelete:CASCADE"`
	Details        StockDetails   `json:"stock_details" gorm:"embedded;embeddedPrefix:details_"`
	AdditionalInfo string         `json:"additional_info,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockLot) TableName() string {
	return "stock_lots"
}

// TotalQuantity sums the quantities of all variants
func (l *StockLot) TotalQuantity() float64 {
	var total float64
	for _, v := range l.Variants {
		total += v.Quantity
	}
	return total
}

// VariantByColor returns the variant with the given color, or nil
func (l *StockLot) VariantByColor(color string) *StockVariant {
	for i := range l.Variants {
		if l.Variants[i].Color == color {
			return &l.Variants[i]
		}
	}
	return nil
}

// RecomputeStatus re-derives the lot status from its current variants
func (l *StockLot) RecomputeStatus(sticky StickySet) {
	l.Status = DeriveStatus(l.TotalQuantity(), l.Status, sticky)
}

// StickySet is the set of statuses that automatic recomputation must not
// overwrite while stock remains on hand
type StickySet map[string]bool

// DefaultStickySet preserves only processing, matching historical behavior.
// quality_check is settable by operators but is not protected by default.
func DefaultStickySet() StickySet {
	return StickySet{StatusProcessing: true}
}

// StickySetFromEnv reads STOCK_STICKY_STATUSES (comma separated) so operators
// can extend protection, e.g. to quality_check
func StickySetFromEnv() StickySet {
	raw := os.Getenv("STOCK_STICKY_STATUSES")
	if raw == "" {
		return DefaultStickySet()
	}
	set := StickySet{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			set[s] = true
		}
	}
	return set
}

// DeriveStatus derives a lot status from the total quantity. An empty lot is
// always out, even while a sticky status is set; otherwise sticky statuses are
// left unchanged and the quantity thresholds decide between low and available.
func DeriveStatus(total float64, current string, sticky StickySet) string {
	if total <= 0 {
		return StatusOut
	}
	if sticky[current] {
		return current
	}
	if total < LowStockThreshold {
		return StatusLow
	}
	return StatusAvailable
}

// StockRepository defines the contract for stock data access
type StockRepository interface {
	Create(lot *StockLot) error
	FindByID(id uint) (*StockLot, error)
	// FindForOrderItem resolves the fallback lot for an order item: the first
	// available or low lot whose denormalized product name matches and which
	// carries a variant of the requested color
	FindForOrderItem(product, color string) (*StockLot, error)
	FindAll(limit, offset int) ([]StockLot, int64, error)
	FindLowStock() ([]StockLot, error)
	Save(lot *StockLot) error
	ReplaceVariants(lot *StockLot, variants []StockVariant) error
	Delete(id uint) error
}
