package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/service"
	"github.com/miqu3iasg/cmj/internal/timegrid"
	"github.com/miqu3iasg/cmj/pkg/response"
)

// ScheduleHandler 课表模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ListEntries 获取当前用户全部课表条目
// GET /api/v1/schedule/entries
func (h *ScheduleHandler) ListEntries(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.scheduleSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// CreateEntry 创建课表条目
// POST /api/v1/schedule/entries
func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.scheduleSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, entry)
}

// UpdateEntry 更新课表条目
// PUT /api/v1/schedule/entries/:id
func (h *ScheduleHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "条目ID不能为空")
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.scheduleSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, entry)
}

// DeleteEntry 删除课表条目
// DELETE /api/v1/schedule/entries/:id
func (h *ScheduleHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "条目ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetGrid 获取周视图网格
// GET /api/v1/schedule/grid
func (h *ScheduleHandler) GetGrid(c *gin.Context) {
	var req dto.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	grid, err := h.scheduleSvc.Grid(c.Request.Context(), userID, req.SlotMinutes)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// GetNextClass 获取下一节课
// GET /api/v1/schedule/next
func (h *ScheduleHandler) GetNextClass(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	next, err := h.scheduleSvc.NextClass(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, next)
}

// ImportICS 导入 ICS 课表（multipart 文件或 JSON URL 两种方式）
// POST /api/v1/schedule/import
func (h *ScheduleHandler) ImportICS(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	// 文件方式优先
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, 13004, "无法读取上传文件")
			return
		}
		defer src.Close()

		result, err := h.scheduleSvc.ImportICSFile(c.Request.Context(), userID, src)
		if err != nil {
			h.handleScheduleError(c, err)
			return
		}
		response.OK(c, result)
		return
	}

	var req dto.ImportICSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.ImportICS(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// handleScheduleError 统一处理课表模块业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	var conflict *timegrid.ConflictError
	switch {
	case errors.Is(err, timegrid.ErrEmptyTitle):
		response.BadRequest(c, 13001, "课程名称不能为空")
	case errors.Is(err, timegrid.ErrInvalidTimeRange):
		response.BadRequest(c, 13002, "开始时间必须早于结束时间")
	case errors.Is(err, timegrid.ErrInvalidDay):
		response.BadRequest(c, 13003, "星期取值超出范围")
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, 13005, "与已有课程时间冲突", conflict.CollidingID)
	case errors.Is(err, service.ErrEntryNotFound), errors.Is(err, service.ErrEntryNotOwned):
		// 归属校验失败按不存在处理，不向调用方暴露他人条目
		response.NotFound(c, 13006, "课表条目不存在")
	case errors.Is(err, service.ErrLocationNotFound):
		response.BadRequest(c, 13007, "关联的校园地点不存在")
	case errors.Is(err, service.ErrICSEmptySource):
		response.BadRequest(c, 13004, "未提供 ICS 文件或 URL")
	default:
		response.InternalError(c)
	}
}
