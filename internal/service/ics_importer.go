package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/model"
	"github.com/miqu3iasg/cmj/internal/timegrid"
)

// ── ICS 导入 ──────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容解析为课表条目。
//
// 设计决策：
//   - DTSTART/DTEND 确定星期几与分钟数
//   - 同 标题+星期+时间 的重复事件只取一条（周循环课表本身即每周一次）
//   - 每条解析结果单独走校验 + 冲突检测，失败的跳过并记入报告，
//     不因单条失败中断整体导入
// ─────────────────────────────────────────────────────────────

var ErrICSEmptySource = errors.New("未提供 ICS 文件或 URL")

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second // 配置缺省时的兜底
)

// parsedClassEvent ICS 解析中间结构
type parsedClassEvent struct {
	Title    string
	Location string
	Day      time.Weekday
	StartMin int
	EndMin   int
}

// FetchICSContent 从 URL 获取 ICS 内容
func FetchICSContent(rawURL string, timeout time.Duration) (io.ReadCloser, error) {
	// webcal:// → https://
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("获取 ICS 失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("获取 ICS 失败: HTTP %d", resp.StatusCode)
	}
	// 限制响应体大小，防止恶意 URL 返回超大内容导致 OOM
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// ParseICS 解析 ICS 内容并转为课表事件列表
func ParseICS(reader io.Reader) ([]parsedClassEvent, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	var events []parsedClassEvent
	seen := make(map[string]bool)
	for _, comp := range cal.Events() {
		evt, ok := parseVEvent(comp)
		if !ok {
			continue
		}
		// 周循环课表：同 标题+星期+时间 的多次出现只取一条
		key := fmt.Sprintf("%s|%d|%d|%d", evt.Title, evt.Day, evt.StartMin, evt.EndMin)
		if seen[key] {
			continue
		}
		seen[key] = true
		events = append(events, evt)
	}
	return events, nil
}

// parseVEvent 解析单个 VEVENT 组件
func parseVEvent(evt *ics.VEvent) (parsedClassEvent, bool) {
	summary := evt.GetProperty(ics.ComponentPropertySummary)
	if summary == nil || summary.Value == "" {
		return parsedClassEvent{}, false
	}

	start, err := evt.GetStartAt()
	if err != nil {
		return parsedClassEvent{}, false
	}
	end, err := evt.GetEndAt()
	if err != nil {
		return parsedClassEvent{}, false
	}
	if !end.After(start) {
		return parsedClassEvent{}, false
	}

	location := ""
	if prop := evt.GetProperty(ics.ComponentPropertyLocation); prop != nil {
		location = prop.Value
	}

	return parsedClassEvent{
		Title:    summary.Value,
		Location: location,
		Day:      start.Weekday(),
		StartMin: start.Hour()*60 + start.Minute(),
		EndMin:   end.Hour()*60 + end.Minute(),
	}, true
}

// ImportICS 从 ICS URL 导入课表条目
// POST /api/v1/schedule/import
func (s *scheduleService) ImportICS(ctx context.Context, userID string, req *dto.ImportICSRequest) (*dto.ImportICSResponse, error) {
	if req.URL == "" {
		return nil, ErrICSEmptySource
	}

	reader, err := FetchICSContent(req.URL, s.fetchTimeout)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return s.importParsed(ctx, userID, reader)
}

// ImportICSFile 从上传的 ICS 文件导入课表条目
// POST /api/v1/schedule/import (multipart)
func (s *scheduleService) ImportICSFile(ctx context.Context, userID string, reader io.Reader) (*dto.ImportICSResponse, error) {
	return s.importParsed(ctx, userID, io.LimitReader(reader, icsMaxFileSize))
}

// importParsed 解析流并逐条落库，冲突/非法条目跳过并记入报告
func (s *scheduleService) importParsed(ctx context.Context, userID string, reader io.Reader) (*dto.ImportICSResponse, error) {
	events, err := ParseICS(reader)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, err
	}
	snapshot := toGridEntries(existing)

	resp := &dto.ImportICSResponse{Entries: []dto.EntryResponse{}}
	var accepted []model.ScheduleEntry

	for _, evt := range events {
		candidate, err := timegrid.Validate(timegrid.Entry{
			Title:    evt.Title,
			Location: evt.Location,
			Day:      evt.Day,
			StartMin: evt.StartMin,
			EndMin:   evt.EndMin,
		})
		if err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, dto.ImportICSError{Title: evt.Title, Reason: err.Error()})
			continue
		}
		if err := timegrid.CheckConflict(snapshot, candidate); err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, dto.ImportICSError{Title: evt.Title, Reason: err.Error()})
			continue
		}

		// 已接受的条目加入快照，后续条目也要与其互查冲突
		snapshot = append(snapshot, candidate)

		entry := model.ScheduleEntry{
			EntryID:   candidate.ID,
			UserID:    userID,
			Title:     candidate.Title,
			Location:  candidate.Location,
			DayOfWeek: int(candidate.Day),
			StartMin:  candidate.StartMin,
			EndMin:    candidate.EndMin,
			Source:    "ics",
		}
		accepted = append(accepted, entry)
	}

	if err := s.repo.ScheduleEntry.BatchCreate(ctx, accepted); err != nil {
		s.logger.Error("批量创建课表条目失败", zap.Error(err))
		return nil, err
	}

	resp.Imported = len(accepted)
	for i := range accepted {
		resp.Entries = append(resp.Entries, toEntryResponse(&accepted[i]))
	}

	s.logger.Info("ICS 导入完成",
		zap.String("user_id", userID),
		zap.Int("imported", resp.Imported),
		zap.Int("skipped", resp.Skipped),
	)
	return resp, nil
}
