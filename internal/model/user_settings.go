package model

// UserSettings 用户偏好设置表 — 对应 user_settings（每用户一行）
type UserSettings struct {
	UserID             string `gorm:"type:uuid;primaryKey"                      json:"user_id"`
	Theme              string `gorm:"type:varchar(20);not null;default:'dark'"  json:"theme"`    // dark | light | system
	Language           string `gorm:"type:varchar(10);not null;default:'pt-BR'" json:"language"` // pt-BR | en
	EmailNotifications bool   `gorm:"not null;default:true"                     json:"email_notifications"`
	PushNotifications  bool   `gorm:"not null;default:true"                     json:"push_notifications"`
	ClassReminders     bool   `gorm:"not null;default:true"                     json:"class_reminders"` // 上课前提醒
	MenuUpdates        bool   `gorm:"not null;default:false"                    json:"menu_updates"`    // 食堂菜单更新提醒
	BaseModel
}

// TableName 指定表名
func (UserSettings) TableName() string { return "user_settings" }
