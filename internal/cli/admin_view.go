package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"nurse-shift/client/internal/route"
	"nurse-shift/client/internal/service"
	"nurse-shift/client/pkg/apperrors"
)

// adminView 护士长工作台：全量班次、请假单与排班操作；返回 true 表示退出应用
func (a *App) adminView(ctx context.Context) bool {
	a.showNotification()

	result, err := a.svc.Admin.LoadAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "เกิดข้อผิดพลาดในการดึงข้อมูล: %v\n", err)
		a.route = route.Landing(a.store.Current())
		return false
	}

	for source := range result.Failed {
		fmt.Fprintf(a.out, "โหลด %s ไม่สำเร็จ แสดงเป็นรายการว่าง\n", source)
	}

	fmt.Fprintln(a.out, "── ตารางเวรทั้งหมด ──")
	a.printShifts(result.Shifts)

	fmt.Fprintln(a.out, "── คำขอลา ──")
	if len(result.LeaveRequests) == 0 {
		fmt.Fprintln(a.out, "ไม่มีคำขอลา")
	}
	for _, lr := range result.LeaveRequests {
		fmt.Fprintf(a.out, "[%d] %s %s %s-%s %s — %s\n",
			lr.ID, lr.NurseName, lr.Date, lr.StartTime, lr.EndTime, lr.Department, lr.Status.DisplayName())
	}

	fmt.Fprintln(a.out, "1) รีเฟรช  2) สร้างเวร  3) อนุมัติ  4) ปฏิเสธ  5) ส่งออก Excel  9) ออกจากระบบ  q) ออก")
	switch a.prompt("เลือก") {
	case "1":
		// 下一轮循环会重新加载
	case "2":
		a.createShift(ctx, result)
	case "3":
		a.decide(ctx, service.DecisionApprove)
	case "4":
		a.decide(ctx, service.DecisionReject)
	case "5":
		a.exportRoster(result)
	case "9":
		a.svc.Auth.SignOut()
		a.route = route.PathSignIn
	case "q":
		return true
	}
	return false
}

func (a *App) createShift(ctx context.Context, result *service.LoadAllResult) {
	fmt.Fprintln(a.out, "── พยาบาล ──")
	for _, n := range result.Nurses {
		fmt.Fprintf(a.out, "[%d] %s\n", n.ID, n.Name)
	}

	input := &service.CreateShiftInput{
		NurseID:    a.prompt("หมายเลขพยาบาล"),
		Date:       a.prompt("วันที่ (YYYY-MM-DD)"),
		StartTime:  a.prompt("เวลาเริ่ม (HH:MM)"),
		EndTime:    a.prompt("เวลาสิ้นสุด (HH:MM)"),
		Department: a.prompt("แผนก"),
	}

	if err := a.svc.Admin.CreateShift(ctx, input); err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(a.out, "กรุณากรอกข้อมูลให้ครบ: %s\n", validationErr.Field)
		}
	}
	a.showNotification()
}

func (a *App) decide(ctx context.Context, decision service.LeaveDecision) {
	raw := a.prompt("หมายเลขคำขอลา")
	requestID, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.out, "หมายเลขคำขอลาไม่ถูกต้อง")
		return
	}
	_ = a.svc.Admin.DecideLeaveRequest(ctx, requestID, decision)
	a.showNotification()
}

func (a *App) exportRoster(result *service.LoadAllResult) {
	buf, filename, err := a.svc.Export.RosterWorkbook(result.Shifts, result.LeaveRequests)
	if err != nil {
		fmt.Fprintf(a.out, "ส่งออกไม่สำเร็จ: %v\n", err)
		return
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(a.out, "บันทึกไฟล์ไม่สำเร็จ: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "บันทึกแล้ว: %s\n", filename)
}
