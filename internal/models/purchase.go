package models

import "time"

type Purchase struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ImageURL     *string   `gorm:"size:500" json:"imageUrl"`
	CategoryID   string    `gorm:"size:36;index;not null" json:"categoryId"` // ürün kategorisine FK
	ItemName     string    `gorm:"size:100;not null" json:"itemName"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Unit         string    `gorm:"size:20;not null" json:"unit"`
	Price        float64   `gorm:"not null" json:"price"` // birim fiyat
	PurchaseDate time.Time `gorm:"index;not null" json:"purchaseDate"`
	CreatedAt    time.Time `json:"createdAt"`
}
