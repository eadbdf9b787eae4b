package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/internal/model"
)

// ScheduleEntryRepository 课表条目数据访问接口
type ScheduleEntryRepository interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	BatchCreate(ctx context.Context, entries []model.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error)
	// ListByUser 返回某用户的全部条目，按创建顺序（列表展示依赖插入序稳定）
	ListByUser(ctx context.Context, userID string) ([]model.ScheduleEntry, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
}

type scheduleEntryRepo struct {
	db *gorm.DB
}

// NewScheduleEntryRepo 创建 ScheduleEntryRepository 实例
func NewScheduleEntryRepo(db *gorm.DB) ScheduleEntryRepository {
	return &scheduleEntryRepo{db: db}
}

func (r *scheduleEntryRepo) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleEntryRepo) BatchCreate(ctx context.Context, entries []model.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *scheduleEntryRepo) GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("CampusLocation").
		Where("entry_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleEntryRepo) ListByUser(ctx context.Context, userID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, entry_id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *scheduleEntryRepo) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).
		Model(entry).
		Where("entry_id = ?", entry.EntryID).
		Updates(map[string]interface{}{
			"title":       entry.Title,
			"instructor":  entry.Instructor,
			"location":    entry.Location,
			"location_id": entry.LocationID,
			"day_of_week": entry.DayOfWeek,
			"start_min":   entry.StartMin,
			"end_min":     entry.EndMin,
			"color":       entry.Color,
		}).Error
}

func (r *scheduleEntryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("entry_id = ?", id).
		Delete(&model.ScheduleEntry{}).Error
}
