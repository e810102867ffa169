package repository

import (
	"folha-ponto-backend/internal/model"

	"gorm.io/gorm"
)

type SyncLogRepository interface {
	Create(entry *model.EmployeeSyncLog) error
	GetByBatch(batchID string) ([]model.EmployeeSyncLog, error)
	GetRecent(limit int) ([]model.EmployeeSyncLog, error)
}

type syncLogRepository struct {
	db *gorm.DB
}

func NewSyncLogRepository(db *gorm.DB) SyncLogRepository {
	return &syncLogRepository{db}
}

func (r *syncLogRepository) Create(entry *model.EmployeeSyncLog) error {
	return r.db.Create(entry).Error
}

func (r *syncLogRepository) GetByBatch(batchID string) ([]model.EmployeeSyncLog, error) {
	var entries []model.EmployeeSyncLog
	err := r.db.Where("batch_id = ?", batchID).Order("created_at").Find(&entries).Error
	return entries, err
}

func (r *syncLogRepository) GetRecent(limit int) ([]model.EmployeeSyncLog, error) {
	var entries []model.EmployeeSyncLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}
