// Package timegrid 课表核心计算层。
//
// 约定：
//   - 星期采用 time.Weekday 语义（0=周日 … 6=周六）
//   - 时间统一为"自午夜起的分钟数"（0 ~ 1439），区间一律左闭右开 [start, end)
//   - 所有函数均为纯函数：无 I/O、无全局状态、不读系统时钟、不修改入参
//
// 持久化、认证与 HTTP 层对本包是外部协作者，本包只操作调用方
// 传入的一份课表快照。
package timegrid

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinutesPerDay 一天的总分钟数
const MinutesPerDay = 24 * 60

// ── 校验错误 ──

var (
	ErrEmptyTitle       = errors.New("课程名称不能为空")
	ErrInvalidTimeRange = errors.New("开始时间必须早于结束时间")
	ErrInvalidDay       = errors.New("星期取值超出 0-6 范围")
)

// ConflictError 新增/修改课程与已有课程时间重叠
type ConflictError struct {
	CollidingID string // 与之冲突的已有课程 ID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("与已有课程时间冲突 (id=%s)", e.CollidingID)
}

// ── 实体 ──

// Entry 一条每周循环的课程记录（不可变值类型）
type Entry struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Instructor string       `json:"instructor"`
	Location   string       `json:"location"`
	LocationID string       `json:"location_id,omitempty"` // 校园地点引用，可为空
	Day        time.Weekday `json:"day"`
	StartMin   int          `json:"start_min"` // 自午夜起的分钟数
	EndMin     int          `json:"end_min"`
	Color      string       `json:"color"` // 仅展示用途，无业务约束
}

// Duration 课程时长（分钟）
func (e Entry) Duration() int { return e.EndMin - e.StartMin }

// Validate 校验候选课程并生成唯一 ID。
//
// 校验失败返回对应哨兵错误；成功时返回补全了 ID 的副本。
// 调用方已填写 ID（如修改场景）时保留原 ID。
func Validate(candidate Entry) (Entry, error) {
	if strings.TrimSpace(candidate.Title) == "" {
		return Entry{}, ErrEmptyTitle
	}
	if candidate.StartMin >= candidate.EndMin {
		return Entry{}, ErrInvalidTimeRange
	}
	if candidate.StartMin < 0 || candidate.EndMin > MinutesPerDay {
		return Entry{}, ErrInvalidTimeRange
	}
	if candidate.Day < time.Sunday || candidate.Day > time.Saturday {
		return Entry{}, ErrInvalidDay
	}
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	return candidate, nil
}

// ── 占用查询 ──

// EntryAt 返回占用 (day, minute) 时刻的课程。
//
// 采用左闭右开语义：minute == EndMin 的时刻不属于该课程。
// 若数据违反无冲突不变量出现多条命中，按遍历顺序返回第一条，
// 由调用方自行记录数据完整性问题，此处不报错。
func EntryAt(entries []Entry, day time.Weekday, minute int) (Entry, bool) {
	for _, e := range entries {
		if e.Day == day && minute >= e.StartMin && minute < e.EndMin {
			return e, true
		}
	}
	return Entry{}, false
}

// EntriesOn 返回指定星期的全部课程（保持原有顺序）
func EntriesOn(entries []Entry, day time.Weekday) []Entry {
	var result []Entry
	for _, e := range entries {
		if e.Day == day {
			result = append(result, e)
		}
	}
	return result
}

// ── 冲突检测 ──

// HasConflict 判断候选课程是否与已有课程在同一天发生时间重叠。
//
// 标准区间重叠判定：existing.Start < cand.End && cand.Start < existing.End。
// 首尾相接（existing.End == cand.Start）不算冲突，连堂课合法。
// 与候选同 ID 的记录跳过，用于修改场景下排除自身。
// 返回第一条冲突课程的 ID。
func HasConflict(entries []Entry, candidate Entry) (string, bool) {
	for _, e := range entries {
		if e.ID == candidate.ID {
			continue
		}
		if e.Day != candidate.Day {
			continue
		}
		if e.StartMin < candidate.EndMin && candidate.StartMin < e.EndMin {
			return e.ID, true
		}
	}
	return "", false
}

// CheckConflict 同 HasConflict，但以 *ConflictError 形式返回结果
func CheckConflict(entries []Entry, candidate Entry) error {
	if id, ok := HasConflict(entries, candidate); ok {
		return &ConflictError{CollidingID: id}
	}
	return nil
}

// ── 下一事件解析 ──

// Moment 一周内的某个时刻，作为显式输入替代系统时钟
type Moment struct {
	Day    time.Weekday
	Minute int // 自午夜起的分钟数
}

// MomentOf 将时间戳折算为周内时刻
func MomentOf(t time.Time) Moment {
	return Moment{Day: t.Weekday(), Minute: t.Hour()*60 + t.Minute()}
}

// NextEntry 相对 now 查找下一节课，跨周回绕。
//
// 算法：
//  1. 当天 StartMin > now.Minute 的课程中取最早开始者
//  2. 否则从次日起逐天扫描（周六之后回到周日），最多一整周，
//     返回首个有课日中最早开始的课程
//  3. 并列时取 ID 最小者，保证确定性
func NextEntry(entries []Entry, now Moment) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}

	var best Entry
	found := false
	for _, e := range entries {
		if e.Day != now.Day || e.StartMin <= now.Minute {
			continue
		}
		if !found || earlier(e, best) {
			best = e
			found = true
		}
	}
	if found {
		return best, true
	}

	for offset := 1; offset <= 7; offset++ {
		day := time.Weekday((int(now.Day) + offset) % 7)
		for _, e := range entries {
			if e.Day != day {
				continue
			}
			if !found || earlier(e, best) {
				best = e
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return Entry{}, false
}

// earlier 判断 a 是否应排在 b 之前（开始时间优先，ID 兜底）
func earlier(a, b Entry) bool {
	if a.StartMin != b.StartMin {
		return a.StartMin < b.StartMin
	}
	return a.ID < b.ID
}

// ── 周视图网格布局 ──

// CellKey 网格单元格坐标：(星期, 槽位序号)。
// 槽位序号 = 自午夜起的分钟数 / 槽位粒度。
type CellKey struct {
	Day  time.Weekday
	Slot int
}

// Cell 单元格内容。
// 课程跨越的首个槽位 IsStart=true，后续被同一课程覆盖的槽位
// IsStart=false 且 StartSlot 指向起始槽位，渲染层据此避免重复出卡片。
type Cell struct {
	Entry     Entry
	IsStart   bool
	StartSlot int
}

// Layout 将课程集合展开为 (day, slot) → Cell 映射。
//
// slotMinutes 为槽位粒度（如 60 表示整点槽）。课程跨越的槽数 =
// ceil(时长 / slotMinutes)。函数为纯计算：已渲染标记仅存在于
// 本次调用的返回值中，不依赖任何跨调用状态。
// 若数据中存在违反不变量的重叠课程，先出现者占据单元格。
func Layout(entries []Entry, slotMinutes int) map[CellKey]Cell {
	if slotMinutes <= 0 {
		slotMinutes = 60
	}

	grid := make(map[CellKey]Cell)
	for _, e := range entries {
		startSlot := e.StartMin / slotMinutes
		span := (e.Duration() + slotMinutes - 1) / slotMinutes
		for i := 0; i < span; i++ {
			key := CellKey{Day: e.Day, Slot: startSlot + i}
			if _, occupied := grid[key]; occupied {
				continue
			}
			grid[key] = Cell{Entry: e, IsStart: i == 0, StartSlot: startSlot}
		}
	}
	return grid
}
