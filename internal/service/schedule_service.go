package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/config"
	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/model"
	"github.com/miqu3iasg/cmj/internal/repository"
	"github.com/miqu3iasg/cmj/internal/timegrid"
)

// ── 课表模块业务错误 ──

var (
	ErrEntryNotFound    = errors.New("课表条目不存在")
	ErrEntryNotOwned    = errors.New("课表条目不属于当前用户")
	ErrLocationNotFound = errors.New("关联的校园地点不存在")
)

// 周视图默认槽位粒度（分钟）
const defaultSlotMinutes = 60

// ScheduleService 课表业务接口
//
// 所有派生查询（冲突、占用、下一节课、网格布局）委托给 timegrid
// 纯函数层，本层负责持久化编排与归属校验。
type ScheduleService interface {
	List(ctx context.Context, userID string) ([]dto.EntryResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*dto.EntryResponse, error)
	Update(ctx context.Context, userID, entryID string, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error)
	Delete(ctx context.Context, userID, entryID string) error
	Grid(ctx context.Context, userID string, slotMinutes int) (*dto.GridResponse, error)
	NextClass(ctx context.Context, userID string) (*dto.NextClassResponse, error)
	ImportICS(ctx context.Context, userID string, req *dto.ImportICSRequest) (*dto.ImportICSResponse, error)
	ImportICSFile(ctx context.Context, userID string, reader io.Reader) (*dto.ImportICSResponse, error)
}

type scheduleService struct {
	repo         *repository.Repository
	logger       *zap.Logger
	clock        func() time.Time // 测试中可替换
	fetchTimeout time.Duration    // ICS URL 拉取超时
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ScheduleService {
	timeout := cfg.Import.ICSFetchTimeout
	if timeout <= 0 {
		timeout = icsFetchTimeout
	}
	return &scheduleService{repo: repo, logger: logger, clock: time.Now, fetchTimeout: timeout}
}

func (s *scheduleService) List(ctx context.Context, userID string) ([]dto.EntryResponse, error) {
	entries, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, toEntryResponse(&entries[i]))
	}
	return result, nil
}

func (s *scheduleService) Create(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	// 1. 核心校验（标题/时间区间/星期域）并生成 ID
	candidate, err := timegrid.Validate(timegrid.Entry{
		Title:      req.Title,
		Instructor: req.Instructor,
		Location:   req.Location,
		Day:        time.Weekday(req.DayOfWeek),
		StartMin:   req.StartMin,
		EndMin:     req.EndMin,
		Color:      req.Color,
	})
	if err != nil {
		return nil, err
	}

	// 2. 地点引用校验（可选字段）
	if req.LocationID != nil {
		if _, err := s.repo.Campus.GetLocation(ctx, *req.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLocationNotFound
			}
			s.logger.Error("查询校园地点失败", zap.Error(err))
			return nil, err
		}
	}

	// 3. 冲突检测：同一天时间区间不得与已有条目重叠
	existing, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}
	if err := timegrid.CheckConflict(toGridEntries(existing), candidate); err != nil {
		return nil, err
	}

	// 4. 持久化
	entry := &model.ScheduleEntry{
		EntryID:    candidate.ID,
		UserID:     userID,
		Title:      candidate.Title,
		Instructor: candidate.Instructor,
		Location:   candidate.Location,
		LocationID: req.LocationID,
		DayOfWeek:  int(candidate.Day),
		StartMin:   candidate.StartMin,
		EndMin:     candidate.EndMin,
		Color:      candidate.Color,
		Source:     "manual",
	}
	if err := s.repo.ScheduleEntry.Create(ctx, entry); err != nil {
		s.logger.Error("创建课表条目失败", zap.Error(err))
		return nil, err
	}

	resp := toEntryResponse(entry)
	return &resp, nil
}

func (s *scheduleService) Update(ctx context.Context, userID, entryID string, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := s.getOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Instructor != nil {
		entry.Instructor = *req.Instructor
	}
	if req.Location != nil {
		entry.Location = *req.Location
	}
	if req.LocationID != nil {
		if _, err := s.repo.Campus.GetLocation(ctx, *req.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLocationNotFound
			}
			s.logger.Error("查询校园地点失败", zap.Error(err))
			return nil, err
		}
		entry.LocationID = req.LocationID
	}
	if req.DayOfWeek != nil {
		entry.DayOfWeek = *req.DayOfWeek
	}
	if req.StartMin != nil {
		entry.StartMin = *req.StartMin
	}
	if req.EndMin != nil {
		entry.EndMin = *req.EndMin
	}
	if req.Color != nil {
		entry.Color = *req.Color
	}

	// 修改后重新走校验与冲突检测；保留原 ID 即自动排除自身
	candidate, err := timegrid.Validate(toGridEntry(entry))
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}
	if err := timegrid.CheckConflict(toGridEntries(existing), candidate); err != nil {
		return nil, err
	}

	if err := s.repo.ScheduleEntry.Update(ctx, entry); err != nil {
		s.logger.Error("更新课表条目失败", zap.Error(err))
		return nil, err
	}

	resp := toEntryResponse(entry)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.getOwnedEntry(ctx, userID, entryID); err != nil {
		return err
	}
	return s.repo.ScheduleEntry.Delete(ctx, entryID)
}

func (s *scheduleService) Grid(ctx context.Context, userID string, slotMinutes int) (*dto.GridResponse, error) {
	if slotMinutes <= 0 {
		slotMinutes = defaultSlotMinutes
	}

	entries, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}

	byID := make(map[string]*model.ScheduleEntry, len(entries))
	for i := range entries {
		byID[entries[i].EntryID] = &entries[i]
	}

	grid := timegrid.Layout(toGridEntries(entries), slotMinutes)

	cells := make([]dto.GridCellResponse, 0, len(grid))
	for key, cell := range grid {
		c := dto.GridCellResponse{
			DayOfWeek: int(key.Day),
			Slot:      key.Slot,
			IsStart:   cell.IsStart,
			StartSlot: cell.StartSlot,
			EntryID:   cell.Entry.ID,
		}
		// 仅起始单元格携带完整条目，续接槽位只给引用，避免重复渲染
		if cell.IsStart {
			if m, ok := byID[cell.Entry.ID]; ok {
				resp := toEntryResponse(m)
				c.Entry = &resp
			}
		}
		cells = append(cells, c)
	}

	// map 遍历顺序随机，响应按 (day, slot) 排序保证稳定
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].DayOfWeek != cells[j].DayOfWeek {
			return cells[i].DayOfWeek < cells[j].DayOfWeek
		}
		return cells[i].Slot < cells[j].Slot
	})

	return &dto.GridResponse{SlotMinutes: slotMinutes, Cells: cells}, nil
}

func (s *scheduleService) NextClass(ctx context.Context, userID string) (*dto.NextClassResponse, error) {
	entries, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}

	now := timegrid.MomentOf(s.clock())
	next, ok := timegrid.NextEntry(toGridEntries(entries), now)
	if !ok {
		return &dto.NextClassResponse{}, nil
	}

	daysAhead := (int(next.Day) - int(now.Day) + 7) % 7
	if daysAhead == 0 && next.StartMin <= now.Minute {
		daysAhead = 7 // 当天课程已全部开始，回绕到下周同日
	}

	var resp *dto.EntryResponse
	for i := range entries {
		if entries[i].EntryID == next.ID {
			r := toEntryResponse(&entries[i])
			resp = &r
			break
		}
	}
	return &dto.NextClassResponse{Entry: resp, DaysAhead: daysAhead}, nil
}

// getOwnedEntry 查询条目并校验归属
func (s *scheduleService) getOwnedEntry(ctx context.Context, userID, entryID string) (*model.ScheduleEntry, error) {
	entry, err := s.repo.ScheduleEntry.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("查询课表条目失败", zap.Error(err))
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrEntryNotOwned
	}
	return entry, nil
}

// ── 模型转换 ──

func toGridEntry(e *model.ScheduleEntry) timegrid.Entry {
	locID := ""
	if e.LocationID != nil {
		locID = *e.LocationID
	}
	return timegrid.Entry{
		ID:         e.EntryID,
		Title:      e.Title,
		Instructor: e.Instructor,
		Location:   e.Location,
		LocationID: locID,
		Day:        time.Weekday(e.DayOfWeek),
		StartMin:   e.StartMin,
		EndMin:     e.EndMin,
		Color:      e.Color,
	}
}

func toGridEntries(entries []model.ScheduleEntry) []timegrid.Entry {
	result := make([]timegrid.Entry, 0, len(entries))
	for i := range entries {
		result = append(result, toGridEntry(&entries[i]))
	}
	return result
}

func toEntryResponse(e *model.ScheduleEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:         e.EntryID,
		Title:      e.Title,
		Instructor: e.Instructor,
		Location:   e.Location,
		LocationID: e.LocationID,
		DayOfWeek:  e.DayOfWeek,
		StartMin:   e.StartMin,
		EndMin:     e.EndMin,
		StartTime:  dto.FormatMinute(e.StartMin),
		EndTime:    dto.FormatMinute(e.EndMin),
		Color:      e.Color,
		Source:     e.Source,
	}
}
