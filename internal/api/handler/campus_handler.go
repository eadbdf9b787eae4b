package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/service"
	"github.com/miqu3iasg/cmj/pkg/response"
)

// CampusHandler 校园信息模块 HTTP 处理器
type CampusHandler struct {
	campusSvc service.CampusService
}

// NewCampusHandler 创建 CampusHandler
func NewCampusHandler(campusSvc service.CampusService) *CampusHandler {
	return &CampusHandler{campusSvc: campusSvc}
}

// ListLocations 获取校园地点列表
// GET /api/v1/campus/locations
func (h *CampusHandler) ListLocations(c *gin.Context) {
	var req dto.LocationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	locations, err := h.campusSvc.ListLocations(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": locations})
}

// GetLocation 获取校园地点详情
// GET /api/v1/campus/locations/:id
func (h *CampusHandler) GetLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "地点ID不能为空")
		return
	}

	location, err := h.campusSvc.GetLocation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampusLocationNotFound) {
			response.NotFound(c, 14001, "校园地点不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, location)
}

// GetNextBus 获取下一班车
// GET /api/v1/campus/bus/next?lat=&lng=
func (h *CampusHandler) GetNextBus(c *gin.Context) {
	var req dto.NextBusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	next, err := h.campusSvc.NextBus(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoBusService):
			// 周日停运不是错误，返回空数据与停运标记
			response.OK(c, gin.H{"no_service": true})
		case errors.Is(err, service.ErrNoBusStops):
			response.NotFound(c, 14002, "暂无可用班车站点")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, next)
}

// GetTodayMenu 获取今日食堂菜单
// GET /api/v1/campus/menu/today
func (h *CampusHandler) GetTodayMenu(c *gin.Context) {
	menu, err := h.campusSvc.TodayMenu(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, menu)
}

// GetWeeklyMenu 获取每周食堂菜单
// GET /api/v1/campus/menu
func (h *CampusHandler) GetWeeklyMenu(c *gin.Context) {
	menu, err := h.campusSvc.WeeklyMenu(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, menu)
}
