package models

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

type Table struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	TableNumber string      `gorm:"size:20;not null" json:"tableNumber"`
	Capacity    *string     `gorm:"size:20" json:"capacity"`
	Description *string     `gorm:"size:255" json:"description"`
	Status      TableStatus `gorm:"size:20;not null;default:available" json:"status"`
}
