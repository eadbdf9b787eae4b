package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User          UserRepository
	Settings      SettingsRepository
	ScheduleEntry ScheduleEntryRepository
	Campus        CampusRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Settings:      NewSettingsRepo(db),
		ScheduleEntry: NewScheduleEntryRepo(db),
		Campus:        NewCampusRepo(db),
	}
}
