package repository

import (
	"folha-ponto-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll() ([]model.Employee, error)
	GetByID(id uint) (*model.Employee, error)
	FindByRHiDID(rhidID string) (*model.Employee, error)
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	Delete(id uint) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("name").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByRHiDID(rhidID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("rhid_employee_id = ?", rhidID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Employee{}, id).Error
}

func (r *employeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Count(&count).Error
	return count, err
}
