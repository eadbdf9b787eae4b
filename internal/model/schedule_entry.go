package model

// ScheduleEntry 课表条目表 — 对应 schedule_entries
//
// 时间统一存储为"自午夜起的分钟数"，星期采用 0=周日 … 6=周六。
// 同一用户同一天的时间区间互不重叠，由 Service 层在创建/修改时
// 通过 timegrid 冲突检测保证，存储层不做被动约束。
type ScheduleEntry struct {
	EntryID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	UserID     string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title      string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Instructor string  `gorm:"type:varchar(100)"                              json:"instructor,omitempty"`
	Location   string  `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	LocationID *string `gorm:"type:varchar(50)"                               json:"location_id,omitempty"` // 校园地点引用
	DayOfWeek  int     `gorm:"type:smallint;not null"                         json:"day_of_week"`           // 0-6
	StartMin   int     `gorm:"type:smallint;not null"                         json:"start_min"`
	EndMin     int     `gorm:"type:smallint;not null"                         json:"end_min"`
	Color      string  `gorm:"type:varchar(30)"                               json:"color,omitempty"` // 仅展示用途
	Source     string  `gorm:"type:varchar(10);not null;default:'manual'"     json:"source"`          // manual | ics
	BaseModel

	// 关联
	CampusLocation *CampusLocation `gorm:"foreignKey:LocationID;references:LocationID" json:"campus_location,omitempty"`
}

// TableName 指定表名
func (ScheduleEntry) TableName() string { return "schedule_entries" }
