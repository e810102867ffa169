package model

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	EmployeeCode         string `json:"employee_code" gorm:"unique;not null"`
	Name                 string `json:"name"`
	Document             string `json:"document"` // CPF
	CompanyPayrollNumber string `json:"company_payroll_number"`
	PayrollNumber        string `json:"payroll_number"`
	Active               bool   `json:"active" gorm:"default:true"`

	// Preenchidos pela sincronização com o RHiD
	RHiDEmployeeID string     `json:"rhid_employee_id" gorm:"column:rhid_employee_id;index"`
	SyncStatus     string     `json:"sync_status"`
	LastSyncedAt   *time.Time `json:"last_synced_at"`

	Launches []EventLaunch `json:"launches,omitempty" gorm:"foreignKey:EmployeeID"`
}

type EmployeeSyncLog struct {
	gorm.Model
	EmployeeID     uint   `json:"employee_id"`
	RHiDEmployeeID string `json:"rhid_employee_id" gorm:"column:rhid_employee_id"`
	BatchID        string `json:"batch_id" gorm:"index"`
	SyncType       string `json:"sync_type"`   // insert/update
	SyncStatus     string `json:"sync_status"` // success/error
	Message        string `json:"message"`
}
