package model

// CampusLocation 校园地点表 — 对应 campus_locations
//
// 以稳定的短标识（如 "ru"、"ccet"）为主键，由迁移脚本预置数据，
// 前端地图与课表的地点引用均指向它。
type CampusLocation struct {
	LocationID  string  `gorm:"type:varchar(50);primaryKey"    json:"location_id"`
	Name        string  `gorm:"type:varchar(200);not null"     json:"name"`
	Description string  `gorm:"type:varchar(500)"              json:"description,omitempty"`
	Type        string  `gorm:"type:varchar(20);not null"      json:"type"` // building | restaurant | library | administrative | other
	Lat         float64 `gorm:"type:double precision;not null" json:"lat"`
	Lng         float64 `gorm:"type:double precision;not null" json:"lng"`
	IsBusStop   bool    `gorm:"not null;default:false"         json:"is_bus_stop"`
	IsActive    bool    `gorm:"not null;default:true"          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (CampusLocation) TableName() string { return "campus_locations" }

// BusDeparture 班车发车时刻表 — 对应 bus_departures
//
// 每行为某个站点的一个发车时刻（自午夜起的分钟数），周日停运
// 由 Service 层处理，不入库。
type BusDeparture struct {
	DepartureID int    `gorm:"primaryKey;autoIncrement"    json:"departure_id"`
	StopID      string `gorm:"type:varchar(50);not null;index" json:"stop_id"`
	DepartMin   int    `gorm:"type:smallint;not null"      json:"depart_min"`

	// 关联
	Stop *CampusLocation `gorm:"foreignKey:StopID;references:LocationID" json:"stop,omitempty"`
}

// TableName 指定表名
func (BusDeparture) TableName() string { return "bus_departures" }
