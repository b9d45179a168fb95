package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"nurse-shift/client/internal/model"
)

// ── ICS 导出 ──────────────────────────────────────────────
//
// 职责：将本人班次序列化为标准 iCalendar (RFC 5545) 内容，供日历应用导入。
//
// 设计决策：
//   - 每个班次一条 VEVENT，UID 以班次 ID 派生，重复导入可被日历端去重
//   - 日期字段可能是 "2006-01-02" 或带时间的 ISO 形态，按前 10 位取日期
//   - 起止时间解析失败的班次跳过并记录告警，不中断整体导出
// ─────────────────────────────────────────────────────────────

const icsDateLayout = "2006-01-02 15:04"

// ShiftCalendar 导出本人班次为 iCalendar
func (s *exportService) ShiftCalendar(shifts []model.Shift) (*bytes.Buffer, string, error) {
	if len(shifts) == 0 {
		return nil, "", ErrExportNoShifts
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	exported := 0
	for _, sh := range shifts {
		start, err := parseShiftTime(sh.Date, sh.StartTime)
		if err != nil {
			s.logger.Warn("班次起始时间无法解析，跳过该班次",
				zap.Int("shift_id", sh.ID), zap.Error(err))
			continue
		}
		end, err := parseShiftTime(sh.Date, sh.EndTime)
		if err != nil {
			s.logger.Warn("班次结束时间无法解析，跳过该班次",
				zap.Int("shift_id", sh.ID), zap.Error(err))
			continue
		}
		// 跨零点的夜班：结束时间早于开始时间时顺延一天
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}

		event := cal.AddEvent(fmt.Sprintf("shift-%d@ward-shift", sh.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("เวร %s", sh.Department))
		event.SetDescription(sh.Status.DisplayName())
		exported++
	}

	if exported == 0 {
		return nil, "", ErrExportNoShifts
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("my_shifts_%s.ics", now.Format("20060102"))
	return buf, filename, nil
}

// parseShiftTime 组合日期与钟点字段为本地时间
func parseShiftTime(date, clock string) (time.Time, error) {
	d := strings.TrimSpace(date)
	if len(d) > 10 {
		d = d[:10]
	}
	c := strings.TrimSpace(clock)
	if len(c) > 5 {
		c = c[:5]
	}
	return time.ParseInLocation(icsDateLayout, d+" "+c, time.Local)
}
