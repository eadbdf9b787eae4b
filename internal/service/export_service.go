package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/miqu3iasg/cmj/internal/repository"
	"github.com/miqu3iasg/cmj/internal/timegrid"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEntries    = errors.New("课表为空，无可导出内容")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 导出网格的展示窗口：7:00 ~ 22:00，整点槽位
const (
	exportGridStartHour = 7
	exportGridEndHour   = 22
)

// dayNames 周视图列头（应用界面语言）
var dayNames = []string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// ExportService 导出业务接口
//
// 设计说明：
//   - 将用户的周课表导出为 Excel (.xlsx)
//   - 行：7:00~22:00 的整点槽位；列：周日~周六
//   - 跨多个槽位的课程合并单元格，与网页周视图的"不重复出卡片"
//     行为一致
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入
type ExportService interface {
	// ExportSchedule 导出某用户的周课表为 Excel
	ExportSchedule(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportSchedule(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	// 1. 查询课表
	entries, err := s.repo.ScheduleEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课表失败", zap.Error(err))
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	// 2. 网格布局（整点槽位）
	grid := timegrid.Layout(toGridEntries(entries), 60)

	// 3. 生成工作簿
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Horários"
	f.SetSheetName("Sheet1", sheet)

	// 表头：A1 空，B1~H1 为周日~周六
	for day := 0; day < 7; day++ {
		col, _ := excelize.ColumnNumberToName(day + 2)
		f.SetCellValue(sheet, col+"1", dayNames[day])
	}

	// 行头 + 单元格
	for hour := exportGridStartHour; hour < exportGridEndHour; hour++ {
		row := hour - exportGridStartHour + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%02d:00", hour))

		for day := 0; day < 7; day++ {
			cell, ok := grid[timegrid.CellKey{Day: time.Weekday(day), Slot: hour}]
			if !ok || !cell.IsStart {
				// 续接槽位由合并单元格覆盖，不重复写入
				continue
			}

			col, _ := excelize.ColumnNumberToName(day + 2)
			text := cell.Entry.Title
			if cell.Entry.Location != "" {
				text += "\n" + cell.Entry.Location
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), text)

			// 跨槽课程合并单元格
			span := (cell.Entry.Duration() + 59) / 60
			if span > 1 {
				endRow := row + span - 1
				f.MergeCell(sheet, fmt.Sprintf("%s%d", col, row), fmt.Sprintf("%s%d", col, endRow))
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "H", 24)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("horarios_%s.xlsx", time.Now().Format("20060102"))
	return &buf, filename, nil
}
