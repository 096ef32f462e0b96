package domain

import "fmt"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the three lifecycle states
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusActive, OrderStatusCompleted:
		return true
	}
	return false
}

type Order struct {
	ID             int64       `json:"id"`
	Equipment      string      `json:"equipment"` // summary of rented item names
	StartDate      string      `json:"startDate"` // YYYY-MM-DD
	EndDate        string      `json:"endDate"`   // YYYY-MM-DD
	Status         OrderStatus `json:"status"`
	Total          int64       `json:"total"`
	ContractNumber string      `json:"contractNumber,omitempty"`
}

// OrderItem is the price snapshot of one rented item, captured at order
// creation. Later catalog price changes never touch it.
type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	EquipmentID int64  `json:"equipment_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Period      string `json:"period"`
}

type CreateOrderRequest struct {
	EquipmentIDs []int64 `json:"equipmentIds"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
}

// ContractNumber builds the contract number for an order. The order id makes
// it unique and keeps numbers ordered by creation within a year.
func ContractNumber(year int, orderID int64) string {
	return fmt.Sprintf("А-%d-%06d", year, orderID)
}
