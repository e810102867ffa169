package repository

import (
	"folha-ponto-backend/internal/model"

	"gorm.io/gorm"
)

type LayoutRepository interface {
	GetAll() ([]model.ExportLayout, error)
	GetByID(id uint) (*model.ExportLayout, error)
	Create(layout *model.ExportLayout) error
	Update(layout *model.ExportLayout) error
	Delete(id uint) error
	Count() (int64, error)

	GetFields(layoutID uint) ([]model.LayoutField, error)
	GetFieldByID(id uint) (*model.LayoutField, error)
	CreateField(field *model.LayoutField) error
	SaveFields(fields []model.LayoutField) error
	DeleteField(id uint) error
}

type layoutRepository struct {
	db *gorm.DB
}

func NewLayoutRepository(db *gorm.DB) LayoutRepository {
	return &layoutRepository{db}
}

func (r *layoutRepository) GetAll() ([]model.ExportLayout, error) {
	var layouts []model.ExportLayout
	err := r.db.Order("name").Find(&layouts).Error
	return layouts, err
}

func (r *layoutRepository) GetByID(id uint) (*model.ExportLayout, error) {
	var layout model.ExportLayout
	err := r.db.First(&layout, id).Error
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *layoutRepository) Create(layout *model.ExportLayout) error {
	return r.db.Create(layout).Error
}

func (r *layoutRepository) Update(layout *model.ExportLayout) error {
	return r.db.Save(layout).Error
}

func (r *layoutRepository) Delete(id uint) error {
	// remove os campos junto com o layout
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("layout_id = ?", id).Delete(&model.LayoutField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ExportLayout{}, id).Error
	})
}

func (r *layoutRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.ExportLayout{}).Count(&count).Error
	return count, err
}

func (r *layoutRepository) GetFields(layoutID uint) ([]model.LayoutField, error) {
	var fields []model.LayoutField
	err := r.db.Where("layout_id = ?", layoutID).
		Order("order_position").Find(&fields).Error
	return fields, err
}

func (r *layoutRepository) GetFieldByID(id uint) (*model.LayoutField, error) {
	var field model.LayoutField
	err := r.db.First(&field, id).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *layoutRepository) CreateField(field *model.LayoutField) error {
	return r.db.Create(field).Error
}

func (r *layoutRepository) SaveFields(fields []model.LayoutField) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range fields {
			if err := tx.Save(&fields[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *layoutRepository) DeleteField(id uint) error {
	return r.db.Delete(&model.LayoutField{}, id).Error
}
