package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/miqu3iasg/cmj/internal/dto"
)

// buildICS 以 CRLF 拼接 iCalendar 文本
func buildICS(events ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//cmj//test//EN",
	}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

func vevent(uid, summary, location, start, end string) string {
	return strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTART:" + start,
		"DTEND:" + end,
		"SUMMARY:" + summary,
		"LOCATION:" + location,
		"END:VEVENT",
	}, "\r\n")
}

// ── ParseICS 测试 ──

func TestParseICS_BasicEvent(t *testing.T) {
	// 2026-08-31 是周一
	content := buildICS(vevent("1", "Cálculo I", "CCET", "20260831T080000Z", "20260831T100000Z"))

	events, err := ParseICS(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseICS 应成功: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("期望 1 个事件，实际 %d", len(events))
	}

	evt := events[0]
	if evt.Title != "Cálculo I" {
		t.Errorf("期望标题 Cálculo I，实际=%s", evt.Title)
	}
	if evt.Day != time.Monday {
		t.Errorf("期望周一，实际=%v", evt.Day)
	}
	if evt.StartMin != 480 || evt.EndMin != 600 {
		t.Errorf("期望 480-600，实际 %d-%d", evt.StartMin, evt.EndMin)
	}
	if evt.Location != "CCET" {
		t.Errorf("期望地点 CCET，实际=%s", evt.Location)
	}
}

func TestParseICS_DeduplicatesWeeklyRecurrence(t *testing.T) {
	// 同一门课相隔一周的两次展开只保留一条
	content := buildICS(
		vevent("1", "Cálculo I", "CCET", "20260831T080000Z", "20260831T100000Z"),
		vevent("2", "Cálculo I", "CCET", "20260907T080000Z", "20260907T100000Z"),
	)

	events, err := ParseICS(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseICS 应成功: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("周循环事件应去重为 1 条，实际 %d", len(events))
	}
}

func TestParseICS_SkipsEventsWithoutSummary(t *testing.T) {
	content := buildICS(strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:1",
		"DTSTART:20260831T080000Z",
		"DTEND:20260831T100000Z",
		"END:VEVENT",
	}, "\r\n"))

	events, err := ParseICS(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseICS 应成功: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("无标题事件应被跳过，实际 %d 条", len(events))
	}
}

func TestParseICS_InvalidContent(t *testing.T) {
	if _, err := ParseICS(strings.NewReader("not an ics file")); err == nil {
		t.Error("非法内容应报错")
	}
}

// ── 导入测试 ──

func TestScheduleService_ImportICSFile_Success(t *testing.T) {
	svc, entryRepo, _ := setupTestScheduleService()

	content := buildICS(
		vevent("1", "Cálculo I", "CCET", "20260831T080000Z", "20260831T100000Z"),
		vevent("2", "Física I", "CCET", "20260902T140000Z", "20260902T160000Z"),
	)

	resp, err := svc.ImportICSFile(context.Background(), "uid-001", strings.NewReader(content))
	if err != nil {
		t.Fatalf("导入应成功: %v", err)
	}
	if resp.Imported != 2 || resp.Skipped != 0 {
		t.Errorf("期望导入 2 跳过 0，实际 imported=%d skipped=%d", resp.Imported, resp.Skipped)
	}
	if len(entryRepo.entries) != 2 {
		t.Errorf("期望持久化 2 条，实际 %d", len(entryRepo.entries))
	}
	for _, e := range entryRepo.entries {
		if e.Source != "ics" {
			t.Errorf("导入条目 Source 应为 ics，实际=%s", e.Source)
		}
	}
}

func TestScheduleService_ImportICSFile_SkipsConflicting(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	// 已有周一 08:00-10:00 的手动条目
	if _, err := svc.Create(context.Background(), "uid-001", createReq("Existente", 1, 480, 600)); err != nil {
		t.Fatalf("预置条目应成功: %v", err)
	}

	content := buildICS(
		vevent("1", "Conflitante", "CCET", "20260831T090000Z", "20260831T110000Z"), // 与已有条目重叠
		vevent("2", "Física I", "CCET", "20260902T140000Z", "20260902T160000Z"),
	)

	resp, err := svc.ImportICSFile(context.Background(), "uid-001", strings.NewReader(content))
	if err != nil {
		t.Fatalf("导入应成功: %v", err)
	}
	if resp.Imported != 1 || resp.Skipped != 1 {
		t.Errorf("期望导入 1 跳过 1，实际 imported=%d skipped=%d", resp.Imported, resp.Skipped)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Title != "Conflitante" {
		t.Errorf("跳过的条目应记入报告: %+v", resp.Errors)
	}
}

func TestScheduleService_ImportICSFile_ConflictWithinBatch(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	// 同一批内两条互相重叠，先到者胜
	content := buildICS(
		vevent("1", "Primeira", "CCET", "20260831T080000Z", "20260831T100000Z"),
		vevent("2", "Segunda", "CCET", "20260831T090000Z", "20260831T110000Z"),
	)

	resp, err := svc.ImportICSFile(context.Background(), "uid-001", strings.NewReader(content))
	if err != nil {
		t.Fatalf("导入应成功: %v", err)
	}
	if resp.Imported != 1 || resp.Skipped != 1 {
		t.Errorf("期望导入 1 跳过 1，实际 imported=%d skipped=%d", resp.Imported, resp.Skipped)
	}
	if resp.Entries[0].Title != "Primeira" {
		t.Errorf("先出现的条目应被接受，实际=%s", resp.Entries[0].Title)
	}
}

func TestScheduleService_ImportICS_EmptySource(t *testing.T) {
	svc, _, _ := setupTestScheduleService()

	_, err := svc.ImportICS(context.Background(), "uid-001", &dto.ImportICSRequest{})
	if !errors.Is(err, ErrICSEmptySource) {
		t.Errorf("期望 ErrICSEmptySource，实际: %v", err)
	}
}
