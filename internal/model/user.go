package model

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Nickname     string `gorm:"type:varchar(50)"                               json:"nickname,omitempty"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	AvatarURL    string `gorm:"type:varchar(500)"                              json:"avatar_url,omitempty"`
	Course       string `gorm:"type:varchar(100)"                              json:"course,omitempty"` // 所修专业/课程，仅展示
	Role         string `gorm:"type:varchar(20);not null;default:'student'"    json:"role"`             // student | admin
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	// 关联
	Settings *UserSettings `gorm:"foreignKey:UserID;references:UserID" json:"settings,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
