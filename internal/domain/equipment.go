package domain

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusRented      EquipmentStatus = "rented"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

// Valid reports whether s is one of the known availability states
func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusRented, EquipmentStatusMaintenance:
		return true
	}
	return false
}

type EquipmentCategory string

const (
	CategoryPowerTools    EquipmentCategory = "Электроинструмент"
	CategoryConstruction  EquipmentCategory = "Строительное оборудование"
	CategoryMeasuring     EquipmentCategory = "Измерительный инструмент"
	CategoryPowerSupplies EquipmentCategory = "Энергетическое оборудование"

	// CategoryAll is the catalog filter value meaning "no category filter"
	CategoryAll EquipmentCategory = "all"
)

// Categories lists the catalog categories in display order
var Categories = []EquipmentCategory{
	CategoryPowerTools,
	CategoryConstruction,
	CategoryMeasuring,
	CategoryPowerSupplies,
}

// Valid reports whether c is one of the catalog categories
func (c EquipmentCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Equipment struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Category EquipmentCategory `json:"category"`
	Price    int64             `json:"price"`
	Period   string            `json:"period"` // rental period unit label, e.g. "day"
	Status   EquipmentStatus   `json:"status"`
	Image    string            `json:"image,omitempty"`
	Specs    []string          `json:"specs"`
}

// IsAvailable reports whether the item may be put in a cart
func (e Equipment) IsAvailable() bool {
	return e.Status == EquipmentStatusAvailable
}

// EquipmentFilter is the catalog query. Empty fields do not filter.
type EquipmentFilter struct {
	Category EquipmentCategory
	Search   string
}

// HasCategory reports whether the filter restricts by category. "all" does not.
func (f EquipmentFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}
