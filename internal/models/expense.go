package models

import "time"

type ExpenseCategory struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description"`
}

type Expense struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ExpenseDate time.Time `gorm:"index;not null" json:"expenseDate"`
	CategoryID  string    `gorm:"size:36;index;not null" json:"categoryId"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Unit        string    `gorm:"size:20;not null" json:"unit"`
	Quantity    float64   `gorm:"not null" json:"quantity"`
	Total       float64   `gorm:"not null" json:"total"` // istemci hesaplar, sunucu yeniden doğrulamaz
	CreatedAt   time.Time `json:"createdAt"`
}
