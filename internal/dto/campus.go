package dto

// ── 校园信息模块 DTO ──

// LocationListRequest 地点列表查询参数
type LocationListRequest struct {
	Type string `form:"type" binding:"omitempty,oneof=building restaurant library administrative other"`
}

// LocationResponse 校园地点响应
type LocationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	IsBusStop   bool    `json:"is_bus_stop"`
}

// NextBusRequest 下一班车查询参数（用户当前坐标）
type NextBusRequest struct {
	Lat float64 `form:"lat" binding:"required"`
	Lng float64 `form:"lng" binding:"required"`
}

// NextBusResponse 下一班车响应
type NextBusResponse struct {
	StopID    string `json:"stop_id"`
	StopName  string `json:"stop_name"`
	DepartMin int    `json:"depart_min"`
	Time      string `json:"time"`     // HH:MM
	Tomorrow  bool   `json:"tomorrow"` // 今日班次已结束，返回次日首班
}

// MealResponse 单餐内容
type MealResponse struct {
	Drinks       string   `json:"drinks,omitempty"`
	Protein      string   `json:"protein,omitempty"`
	Vegetarian   string   `json:"vegetarian,omitempty"`
	Sides        []string `json:"sides,omitempty"`
	Fruit        string   `json:"fruit,omitempty"`
	Bakery       string   `json:"bakery,omitempty"`
	MainDish     string   `json:"main_dish,omitempty"`
	SecondOption string   `json:"second_option,omitempty"`
	Drink        string   `json:"drink,omitempty"`
	Dessert      string   `json:"dessert,omitempty"`
	Calories     string   `json:"calories,omitempty"`
}

// DailyMenuResponse 单日食堂菜单
type DailyMenuResponse struct {
	DayIndex  int          `json:"day_index"` // 1-6（周一~周六）
	DayName   string       `json:"day_name"`
	Breakfast MealResponse `json:"breakfast"`
	Lunch     MealResponse `json:"lunch"`
	Dinner    MealResponse `json:"dinner"`
}

// WeeklyMenuResponse 每周食堂菜单
type WeeklyMenuResponse struct {
	Days []DailyMenuResponse `json:"days"`
}
