package repository

import (
	"folha-ponto-backend/internal/model"

	"gorm.io/gorm"
)

type LaunchRepository interface {
	GetAll() ([]model.EventLaunch, error)
	GetByID(id uint) (*model.EventLaunch, error)
	GetByPeriod(startDate, endDate string) ([]model.EventLaunch, error)
	Create(launch *model.EventLaunch) error
	Update(launch *model.EventLaunch) error
	Delete(id uint) error
	CountByPeriod(startDate, endDate string) (int64, error)
}

type launchRepository struct {
	db *gorm.DB
}

func NewLaunchRepository(db *gorm.DB) LaunchRepository {
	return &launchRepository{db}
}

func (r *launchRepository) GetAll() ([]model.EventLaunch, error) {
	var launches []model.EventLaunch
	err := r.db.Preload("Employee").Preload("Event").
		Order("launch_date desc").Find(&launches).Error
	return launches, err
}

func (r *launchRepository) GetByID(id uint) (*model.EventLaunch, error) {
	var launch model.EventLaunch
	err := r.db.Preload("Employee").Preload("Event").First(&launch, id).Error
	if err != nil {
		return nil, err
	}
	return &launch, nil
}

// GetByPeriod returns the launches inside the window ordered by employee
// then launch date, the order the export assembler expects.
func (r *launchRepository) GetByPeriod(startDate, endDate string) ([]model.EventLaunch, error) {
	var launches []model.EventLaunch
	err := r.db.Preload("Employee").Preload("Event").
		Where("launch_date >= ? AND launch_date <= ?", startDate, endDate).
		Order("employee_id").Order("launch_date").
		Find(&launches).Error
	return launches, err
}

func (r *launchRepository) Create(launch *model.EventLaunch) error {
	return r.db.Create(launch).Error
}

func (r *launchRepository) Update(launch *model.EventLaunch) error {
	return r.db.Save(launch).Error
}

func (r *launchRepository) Delete(id uint) error {
	return r.db.Delete(&model.EventLaunch{}, id).Error
}

func (r *launchRepository) CountByPeriod(startDate, endDate string) (int64, error) {
	var count int64
	err := r.db.Model(&model.EventLaunch{}).
		Where("launch_date >= ? AND launch_date <= ?", startDate, endDate).
		Count(&count).Error
	return count, err
}
