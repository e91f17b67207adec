package models

import "time"

type Leave struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"size:36;index;not null" json:"employeeId"`
	LeaveType  string    `gorm:"size:30;not null" json:"leaveType"`
	StartDate  time.Time `gorm:"not null" json:"startDate"`
	EndDate    time.Time `gorm:"not null" json:"endDate"`
	Reason     *string   `gorm:"size:255" json:"reason"`
	Status     string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
