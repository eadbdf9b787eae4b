package dto

// ── 用户模块 DTO ──

// UserListRequest 用户列表查询参数
type UserListRequest struct {
	PaginationRequest
	Role    string `form:"role"    binding:"omitempty,oneof=student admin"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// UpdateUserRequest 更新用户信息请求（均为可选，仅更新非空字段）
type UpdateUserRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=50"`
	Nickname  *string `json:"nickname"   binding:"omitempty,max=30"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=500"`
	Course    *string `json:"course"     binding:"omitempty,max=100"`
}

// UpdateSettingsRequest 更新偏好设置请求
type UpdateSettingsRequest struct {
	Theme              *string `json:"theme"               binding:"omitempty,oneof=dark light system"`
	Language           *string `json:"language"            binding:"omitempty,oneof=pt-BR en"`
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
	ClassReminders     *bool   `json:"class_reminders"`
	MenuUpdates        *bool   `json:"menu_updates"`
}

// SettingsResponse 偏好设置响应
type SettingsResponse struct {
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	ClassReminders     bool   `json:"class_reminders"`
	MenuUpdates        bool   `json:"menu_updates"`
}
