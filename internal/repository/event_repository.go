package repository

import (
	"folha-ponto-backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository interface {
	GetAll() ([]model.PayrollEvent, error)
	GetByID(id uint) (*model.PayrollEvent, error)
	Create(event *model.PayrollEvent) error
	Update(event *model.PayrollEvent) error
	Delete(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db}
}

func (r *eventRepository) GetAll() ([]model.PayrollEvent, error) {
	var events []model.PayrollEvent
	err := r.db.Order("code").Find(&events).Error
	return events, err
}

func (r *eventRepository) GetByID(id uint) (*model.PayrollEvent, error) {
	var event model.PayrollEvent
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(event *model.PayrollEvent) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) Update(event *model.PayrollEvent) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&model.PayrollEvent{}, id).Error
}
