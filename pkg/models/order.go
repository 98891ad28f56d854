package models

import (
	"encoding/json"
	"time"
)

// Order statuses. Completed and cancelled are terminal: reaching either one
// releases the order's table.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func KnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func TerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TableID    uint      `gorm:"not null;index" json:"table_id"`
	Status     string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Items      string    `gorm:"type:text;not null" json:"items"` // JSON-encoded line-item snapshots
	TotalPrice float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	WaiterID   *uint     `gorm:"index" json:"waiter_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line-item snapshot: the menu item's name and price captured
// at order creation. Later catalog edits never touch it.
type OrderItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

func (o *Order) SetLineItems(items []OrderItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = string(data)
	return nil
}

func (o *Order) LineItems() ([]OrderItem, error) {
	var items []OrderItem
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}
