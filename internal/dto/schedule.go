package dto

import "fmt"

// ── 课表模块 DTO ──
//
// API 层时间统一使用"自午夜起的分钟数"，响应中附带 HH:MM
// 格式化字符串，遗留的整点/半点小时编码在此边界收敛，不进入核心。

// CreateEntryRequest 创建课表条目请求
type CreateEntryRequest struct {
	Title      string  `json:"title"       binding:"required,max=200"`
	Instructor string  `json:"instructor"  binding:"omitempty,max=100"`
	Location   string  `json:"location"    binding:"omitempty,max=200"`
	LocationID *string `json:"location_id" binding:"omitempty,max=50"`
	DayOfWeek  int     `json:"day_of_week" binding:"min=0,max=6"`
	StartMin   int     `json:"start_min"   binding:"min=0,max=1439"`
	EndMin     int     `json:"end_min"     binding:"min=1,max=1440"`
	Color      string  `json:"color"       binding:"omitempty,max=30"`
}

// UpdateEntryRequest 更新课表条目请求
type UpdateEntryRequest struct {
	Title      *string `json:"title"       binding:"omitempty,max=200"`
	Instructor *string `json:"instructor"  binding:"omitempty,max=100"`
	Location   *string `json:"location"    binding:"omitempty,max=200"`
	LocationID *string `json:"location_id" binding:"omitempty,max=50"`
	DayOfWeek  *int    `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	StartMin   *int    `json:"start_min"   binding:"omitempty,min=0,max=1439"`
	EndMin     *int    `json:"end_min"     binding:"omitempty,min=1,max=1440"`
	Color      *string `json:"color"       binding:"omitempty,max=30"`
}

// EntryResponse 课表条目响应
type EntryResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Instructor string  `json:"instructor,omitempty"`
	Location   string  `json:"location,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
	DayOfWeek  int     `json:"day_of_week"`
	StartMin   int     `json:"start_min"`
	EndMin     int     `json:"end_min"`
	StartTime  string  `json:"start_time"` // HH:MM
	EndTime    string  `json:"end_time"`   // HH:MM
	Color      string  `json:"color,omitempty"`
	Source     string  `json:"source"`
}

// GridRequest 周视图查询参数
type GridRequest struct {
	SlotMinutes int `form:"slot_minutes" binding:"omitempty,oneof=30 60"`
}

// GridCellResponse 周视图单元格
type GridCellResponse struct {
	DayOfWeek int            `json:"day_of_week"`
	Slot      int            `json:"slot"`
	IsStart   bool           `json:"is_start"`
	StartSlot int            `json:"start_slot"`
	Entry     *EntryResponse `json:"entry,omitempty"` // 仅起始单元格携带完整条目
	EntryID   string         `json:"entry_id"`
}

// GridResponse 周视图响应
type GridResponse struct {
	SlotMinutes int                `json:"slot_minutes"`
	Cells       []GridCellResponse `json:"cells"`
}

// NextClassResponse 下一节课响应
type NextClassResponse struct {
	Entry     *EntryResponse `json:"entry,omitempty"`
	DaysAhead int            `json:"days_ahead"` // 0=今天，1=明天…
}

// ImportICSRequest ICS 导入请求（URL 方式；文件方式走 multipart）
type ImportICSRequest struct {
	URL string `json:"url" binding:"omitempty,url"`
}

// ImportICSResponse ICS 导入响应
type ImportICSResponse struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Entries  []EntryResponse  `json:"entries"`
	Errors   []ImportICSError `json:"errors,omitempty"`
}

// ImportICSError 单条导入失败详情
type ImportICSError struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// FormatMinute 将分钟数格式化为 HH:MM
func FormatMinute(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
