package models

import "time"

type Attendance struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"size:36;index;not null" json:"employeeId"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	CheckIn    *string   `gorm:"size:10" json:"checkIn"` // "09:00" formatında saat
	CheckOut   *string   `gorm:"size:10" json:"checkOut"`
	Status     string    `gorm:"size:20;not null" json:"status"` // present, absent, late vs.
	CreatedAt  time.Time `json:"createdAt"`
}
