package model

import "gorm.io/gorm"

type PayrollEvent struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;not null"`
	Description string `json:"description"`
}

type EventLaunch struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"index;not null"`
	EventID    uint   `json:"event_id" gorm:"index;not null"`
	LaunchDate string `json:"launch_date" gorm:"index"` // formato YYYY-MM-DD

	Quantity   float64 `json:"quantity"`
	UnitValue  float64 `json:"unit_value"`
	TotalValue float64 `json:"total_value"`

	// Relações
	Employee Employee     `json:"employee" gorm:"foreignKey:EmployeeID"`
	Event    PayrollEvent `json:"event" gorm:"foreignKey:EventID"`
}
