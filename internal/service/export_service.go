package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"nurse-shift/client/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoShifts     = errors.New("没有可导出的班次")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 护士长侧：全量班次 + 请假单导出为 Excel (.xlsx)
//   - 护士侧：本人班次导出为 iCalendar (.ics)，可导入日历应用
//   - 均以 bytes.Buffer 返回，由表现层决定落盘位置
type ExportService interface {
	// RosterWorkbook 导出班次与请假单为 Excel
	RosterWorkbook(shifts []model.Shift, requests []model.LeaveRequest) (*bytes.Buffer, string, error)
	// ShiftCalendar 导出本人班次为 iCalendar
	ShiftCalendar(shifts []model.Shift) (*bytes.Buffer, string, error)
}

type exportService struct {
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(logger *zap.Logger) ExportService {
	return &exportService{logger: logger}
}

// ═══════════════════════════════════════════════════════════
// RosterWorkbook — 班次与请假单导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "ตารางเวร"：全量班次（护士 / 日期 / 时间 / 科室 / 状态）
//   - Sheet "คำขอลา"：请假单（护士 / 班次日期 / 时间 / 科室 / 状态 / 发起时间）
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) RosterWorkbook(shifts []model.Shift, requests []model.LeaveRequest) (*bytes.Buffer, string, error) {
	if len(shifts) == 0 && len(requests) == 0 {
		return nil, "", ErrExportNoShifts
	}

	f := excelize.NewFile()
	defer f.Close()

	const shiftSheet = "ตารางเวร"
	const leaveSheet = "คำขอลา"

	f.SetSheetName("Sheet1", shiftSheet)
	if _, err := f.NewSheet(leaveSheet); err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 1. 班次表
	shiftHeaders := []any{"ID", "พยาบาล", "วันที่", "เวลาเริ่ม", "เวลาสิ้นสุด", "แผนก", "สถานะ"}
	if err := writeRow(f, shiftSheet, 1, shiftHeaders); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	for i, sh := range shifts {
		row := []any{sh.ID, sh.NurseName, sh.Date, sh.StartTime, sh.EndTime, sh.Department, sh.Status.DisplayName()}
		if err := writeRow(f, shiftSheet, i+2, row); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	// 2. 请假单表
	leaveHeaders := []any{"ID", "พยาบาล", "วันที่", "เวลาเริ่ม", "เวลาสิ้นสุด", "แผนก", "สถานะ", "ยื่นเมื่อ"}
	if err := writeRow(f, leaveSheet, 1, leaveHeaders); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	for i, lr := range requests {
		row := []any{lr.ID, lr.NurseName, lr.Date, lr.StartTime, lr.EndTime, lr.Department, lr.Status.DisplayName(), lr.RequestedAt}
		if err := writeRow(f, leaveSheet, i+2, row); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("roster_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// writeRow 写入一行单元格
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
