package models

import "time"

type Product struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Price        float64   `gorm:"not null" json:"price"`
	PurchaseCost *float64  `json:"purchaseCost"`
	CategoryID   string    `gorm:"size:36;index;not null" json:"categoryId"`
	ImageURL     *string   `gorm:"size:500" json:"imageUrl"`
	Unit         string    `gorm:"size:20;not null;default:piece" json:"unit"` // adet, tabak, bardak vs.
	Description  *string   `gorm:"size:500" json:"description"`
	Quantity     float64   `gorm:"not null;default:0" json:"quantity"` // stok miktarı, satışta düşülmez
	CreatedAt    time.Time `json:"createdAt"`
}
