package models

import "time"

type Payroll struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"size:36;index;not null" json:"employeeId"`
	Month      string    `gorm:"size:20;not null" json:"month"`
	Year       string    `gorm:"size:10;not null" json:"year"`
	BaseSalary float64   `gorm:"not null" json:"baseSalary"`
	Bonus      float64   `gorm:"not null;default:0" json:"bonus"`
	Deductions float64   `gorm:"not null;default:0" json:"deductions"`
	NetSalary  float64   `gorm:"not null" json:"netSalary"`
	Status     string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type StaffSalary struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID   string    `gorm:"size:36;index;not null" json:"employeeId"`
	SalaryDate   time.Time `gorm:"not null" json:"salaryDate"`
	SalaryAmount float64   `gorm:"not null" json:"salaryAmount"`
	DeductSalary float64   `gorm:"not null;default:0" json:"deductSalary"`
	TotalSalary  float64   `gorm:"not null" json:"totalSalary"`
	CreatedAt    time.Time `json:"createdAt"`
}
