package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/miqu3iasg/cmj/config"
	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/model"
	"github.com/miqu3iasg/cmj/internal/repository"
	"github.com/miqu3iasg/cmj/internal/timegrid"
)

// ── 测试辅助 ──

func setupTestScheduleService() (*scheduleService, *mockScheduleEntryRepo, *mockCampusRepo) {
	entryRepo := newMockScheduleEntryRepo()
	campusRepo := newMockCampusRepo()
	repo := &repository.Repository{
		User:          newMockUserRepo(),
		Settings:      newMockSettingsRepo(),
		ScheduleEntry: entryRepo,
		Campus:        campusRepo,
	}
	svc := NewScheduleService(&config.Config{}, repo, zap.NewNop()).(*scheduleService)
	return svc, entryRepo, campusRepo
}

func createReq(title string, day, startMin, endMin int) *dto.CreateEntryRequest {
	return &dto.CreateEntryRequest{
		Title:     title,
		DayOfWeek: day,
		StartMin:  startMin,
		EndMin:    endMin,
	}
}

// ── Create 测试 ──

func TestScheduleService_Create_Success(t *testing.T) {
	svc, entryRepo, _ := setupTestScheduleService()

	resp, err := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.ID == "" {
		t.Error("应为新条目生成 ID")
	}
	if resp.StartTime != "08:00" || resp.EndTime != "10:00" {
		t.Errorf("期望时间 08:00-10:00，实际 %s-%s", resp.StartTime, resp.EndTime)
	}
	if resp.Source != "manual" {
		t.Errorf("期望 Source=manual，实际=%s", resp.Source)
	}
	if len(entryRepo.entries) != 1 {
		t.Errorf("期望持久化 1 条，实际 %d 条", len(entryRepo.entries))
	}
}

func TestScheduleService_Create_InvalidTimeRange(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	_, err := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 600, 480))
	if !errors.Is(err, timegrid.ErrInvalidTimeRange) {
		t.Errorf("期望 ErrInvalidTimeRange，实际: %v", err)
	}
}

func TestScheduleService_Create_EmptyTitle(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	_, err := svc.Create(context.Background(), "uid-001", createReq("   ", 1, 480, 600))
	if !errors.Is(err, timegrid.ErrEmptyTitle) {
		t.Errorf("期望 ErrEmptyTitle，实际: %v", err)
	}
}

func TestScheduleService_Create_Conflict(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	first, err := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))
	if err != nil {
		t.Fatalf("第一条创建应成功: %v", err)
	}

	_, err = svc.Create(context.Background(), "uid-001", createReq("Física I", 1, 540, 660))
	var conflict *timegrid.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("期望 ConflictError，实际: %v", err)
	}
	if conflict.CollidingID != first.ID {
		t.Errorf("期望冲突条目为 %s，实际=%s", first.ID, conflict.CollidingID)
	}
}

func TestScheduleService_Create_BackToBackAllowed(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	if _, err := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600)); err != nil {
		t.Fatalf("第一条创建应成功: %v", err)
	}
	// [480,600) 与 [600,720) 首尾相接，不算冲突
	if _, err := svc.Create(context.Background(), "uid-001", createReq("Física I", 1, 600, 720)); err != nil {
		t.Errorf("首尾相接的条目不应冲突: %v", err)
	}
}

func TestScheduleService_Create_OtherUserNoConflict(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	if _, err := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600)); err != nil {
		t.Fatalf("创建应成功: %v", err)
	}
	// 冲突检测按用户隔离
	if _, err := svc.Create(context.Background(), "uid-002", createReq("Física I", 1, 480, 600)); err != nil {
		t.Errorf("不同用户的同时段条目不应冲突: %v", err)
	}
}

func TestScheduleService_Create_LocationNotFound(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	locID := "nonexistent"
	req := createReq("Cálculo I", 1, 480, 600)
	req.LocationID = &locID

	_, err := svc.Create(context.Background(), "uid-001", req)
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("期望 ErrLocationNotFound，实际: %v", err)
	}
}

func TestScheduleService_Create_WithValidLocation(t *testing.T) {
	svc, _, campusRepo := setupTestScheduleService()
	campusRepo.addLocation(&model.CampusLocation{LocationID: "ccet", Name: "CCET", Type: "building"})

	locID := "ccet"
	req := createReq("Cálculo I", 1, 480, 600)
	req.LocationID = &locID

	resp, err := svc.Create(context.Background(), "uid-001", req)
	if err != nil {
		t.Fatalf("带合法地点的创建应成功: %v", err)
	}
	if resp.LocationID == nil || *resp.LocationID != "ccet" {
		t.Error("响应应携带地点引用")
	}
}

// ── Update 测试 ──

func TestScheduleService_Update_SelfExcludedFromConflict(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	created, err := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))
	if err != nil {
		t.Fatalf("创建应成功: %v", err)
	}

	// 在自身原时段内小幅平移，不应与自己冲突
	newStart, newEnd := 510, 630
	resp, err := svc.Update(context.Background(), "uid-001", created.ID, &dto.UpdateEntryRequest{
		StartMin: &newStart,
		EndMin:   &newEnd,
	})
	if err != nil {
		t.Fatalf("平移自身时段不应报冲突: %v", err)
	}
	if resp.StartMin != 510 || resp.EndMin != 630 {
		t.Errorf("期望 510-630，实际 %d-%d", resp.StartMin, resp.EndMin)
	}
}

func TestScheduleService_Update_ConflictWithOther(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	first, _ := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))
	second, _ := svc.Create(context.Background(), "uid-001", createReq("Física I", 1, 600, 720))

	// 将第二条前移到与第一条重叠
	newStart := 540
	_, err := svc.Update(context.Background(), "uid-001", second.ID, &dto.UpdateEntryRequest{StartMin: &newStart})
	var conflict *timegrid.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("期望 ConflictError，实际: %v", err)
	}
	if conflict.CollidingID != first.ID {
		t.Errorf("期望冲突条目为 %s，实际=%s", first.ID, conflict.CollidingID)
	}
}

func TestScheduleService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	title := "Novo"
	_, err := svc.Update(context.Background(), "uid-001", "nonexistent", &dto.UpdateEntryRequest{Title: &title})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("期望 ErrEntryNotFound，实际: %v", err)
	}
}

func TestScheduleService_Update_NotOwned(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	created, _ := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))

	title := "Novo"
	_, err := svc.Update(context.Background(), "uid-002", created.ID, &dto.UpdateEntryRequest{Title: &title})
	if !errors.Is(err, ErrEntryNotOwned) {
		t.Errorf("期望 ErrEntryNotOwned，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestScheduleService_Delete_Success(t *testing.T) {
	svc, entryRepo, _ := setupTestScheduleService()

	created, _ := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))

	if err := svc.Delete(context.Background(), "uid-001", created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if len(entryRepo.entries) != 0 {
		t.Error("条目应已删除")
	}
}

func TestScheduleService_Delete_NotOwned(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	created, _ := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))

	if err := svc.Delete(context.Background(), "uid-002", created.ID); !errors.Is(err, ErrEntryNotOwned) {
		t.Errorf("期望 ErrEntryNotOwned，实际: %v", err)
	}
}

// ── Grid 测试 ──

func TestScheduleService_Grid_SpansWithoutDuplicateEntry(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	// 两小时课程，60 分钟槽位 → 占两格
	created, _ := svc.Create(context.Background(), "uid-001", createReq("Cálculo I", 1, 480, 600))

	grid, err := svc.Grid(context.Background(), "uid-001", 60)
	if err != nil {
		t.Fatalf("Grid 应成功: %v", err)
	}
	if grid.SlotMinutes != 60 {
		t.Errorf("期望 SlotMinutes=60，实际=%d", grid.SlotMinutes)
	}
	if len(grid.Cells) != 2 {
		t.Fatalf("期望 2 个单元格，实际 %d", len(grid.Cells))
	}

	var startCount int
	for _, cell := range grid.Cells {
		if cell.EntryID != created.ID {
			t.Errorf("单元格应指向条目 %s，实际=%s", created.ID, cell.EntryID)
		}
		if cell.IsStart {
			startCount++
			if cell.Entry == nil {
				t.Error("起始单元格应携带完整条目")
			}
		} else if cell.Entry != nil {
			t.Error("续接单元格不应重复携带条目")
		}
	}
	if startCount != 1 {
		t.Errorf("期望恰好 1 个起始单元格，实际 %d", startCount)
	}
}

func TestScheduleService_Grid_DefaultSlot(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	grid, err := svc.Grid(context.Background(), "uid-001", 0)
	if err != nil {
		t.Fatalf("Grid 应成功: %v", err)
	}
	if grid.SlotMinutes != defaultSlotMinutes {
		t.Errorf("slotMinutes<=0 时应回退默认值 %d，实际=%d", defaultSlotMinutes, grid.SlotMinutes)
	}
}

// ── NextClass 测试 ──

func TestScheduleService_NextClass_SameDay(t *testing.T) {
	svc, _, _ := setupTestScheduleService()
	// 2026-08-31 是周一，10:00
	svc.clock = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }

	svc.Create(context.Background(), "uid-001", createReq("Manhã", 1, 480, 600))  // 已开始
	svc.Create(context.Background(), "uid-001", createReq("Tarde", 1, 840, 960))  // 14:00
	svc.Create(context.Background(), "uid-001", createReq("Quarta", 3, 480, 600)) // 更晚的一天

	resp, err := svc.NextClass(context.Background(), "uid-001")
	if err != nil {
		t.Fatalf("NextClass 应成功: %v", err)
	}
	if resp.Entry == nil {
		t.Fatal("应找到下一节课")
	}
	if resp.Entry.Title != "Tarde" {
		t.Errorf("期望下一节课为 Tarde，实际=%s", resp.Entry.Title)
	}
	if resp.DaysAhead != 0 {
		t.Errorf("同日课程期望 DaysAhead=0，实际=%d", resp.DaysAhead)
	}
}

func TestScheduleService_NextClass_WrapsToNextWeek(t *testing.T) {
	svc, _, _ := setupTestScheduleService()
	// 周一 10:00，唯一课程在周一 08:00，已开始 → 回绕到下周一
	svc.clock = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }

	svc.Create(context.Background(), "uid-001", createReq("Manhã", 1, 480, 600))

	resp, err := svc.NextClass(context.Background(), "uid-001")
	if err != nil {
		t.Fatalf("NextClass 应成功: %v", err)
	}
	if resp.Entry == nil {
		t.Fatal("应找到下一节课")
	}
	if resp.DaysAhead != 7 {
		t.Errorf("回绕到下周同日期望 DaysAhead=7，实际=%d", resp.DaysAhead)
	}
}

func TestScheduleService_NextClass_Empty(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	resp, err := svc.NextClass(context.Background(), "uid-001")
	if err != nil {
		t.Fatalf("NextClass 应成功: %v", err)
	}
	if resp.Entry != nil {
		t.Error("空课表不应返回下一节课")
	}
}
