package models

import "time"

type Employee struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID  string    `gorm:"size:20;not null;index" json:"employeeId"` // EMP001 gibi sicil no
	Name        string    `gorm:"size:100;not null" json:"name"`
	Position    string    `gorm:"size:50;not null" json:"position"`
	Department  string    `gorm:"size:50;not null" json:"department"`
	Email       *string   `gorm:"size:100" json:"email"`
	Phone       *string   `gorm:"size:30" json:"phone"`
	JoiningDate time.Time `gorm:"not null" json:"joiningDate"`
	Salary      float64   `gorm:"not null" json:"salary"`
	PhotoURL    *string   `gorm:"size:500" json:"photoUrl"`
	Status      string    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
