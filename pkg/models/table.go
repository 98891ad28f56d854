package models

import (
	"time"
)

type Table struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TableNumber int       `gorm:"uniqueIndex;not null" json:"table_number"`
	Seats       int       `gorm:"not null" json:"seats"`
	IsOccupied  bool      `gorm:"default:false" json:"is_occupied"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Table) TableName() string {
	return "restaurant_tables"
}
