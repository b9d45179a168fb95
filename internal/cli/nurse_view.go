package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/route"
	"nurse-shift/client/pkg/apperrors"
)

// nurseView 护士工作台：本人班次列表与请假操作；返回 true 表示退出应用
func (a *App) nurseView(ctx context.Context) bool {
	a.showNotification()

	shifts, err := a.svc.Shift.LoadOwnShifts(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			fmt.Fprintln(a.out, "กรุณาล็อกอินก่อนใช้งาน")
			a.route = route.PathSignIn
			return false
		}
		fmt.Fprintf(a.out, "เกิดข้อผิดพลาดในการดึงข้อมูลเวร: %v\n", err)
		// 401 由网关统一处理，这里继续展示旧缓存
		shifts = a.svc.Shift.Shifts()
	}

	fmt.Fprintln(a.out, "── ตารางเวรของฉัน ──")
	a.printShifts(shifts)

	fmt.Fprintln(a.out, "1) รีเฟรช  2) ขอลา  3) ส่งออกปฏิทิน  9) ออกจากระบบ  q) ออก")
	switch a.prompt("เลือก") {
	case "1":
		// 下一轮循环会重新加载
	case "2":
		a.requestLeave(ctx)
	case "3":
		a.exportCalendar()
	case "9":
		a.svc.Auth.SignOut()
		a.route = route.PathSignIn
	case "q":
		return true
	}
	return false
}

func (a *App) printShifts(shifts []model.Shift) {
	if len(shifts) == 0 {
		fmt.Fprintln(a.out, "ไม่มีเวรที่ได้รับมอบหมาย")
		return
	}
	for _, sh := range shifts {
		fmt.Fprintf(a.out, "[%d] %s %s-%s %s — %s\n",
			sh.ID, sh.Date, sh.StartTime, sh.EndTime, sh.Department, sh.Status.DisplayName())
	}
}

func (a *App) requestLeave(ctx context.Context) {
	raw := a.prompt("หมายเลขเวร")
	shiftID, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.out, "หมายเลขเวรไม่ถูกต้อง")
		return
	}

	// 变更调用前必须经过显式确认
	confirmed := a.confirm("คุณแน่ใจหรือไม่ว่าต้องการขอลา?")
	if err := a.svc.Shift.RequestLeave(ctx, shiftID, confirmed); err != nil {
		// 远端失败已通过通知中心反馈，这里只提示本地前置检查的结果
		var remoteErr *apperrors.RemoteError
		if !errors.As(err, &remoteErr) && !errors.Is(err, apperrors.ErrUnauthorized) {
			fmt.Fprintf(a.out, "%v\n", err)
		}
	}
	a.showNotification()
}

func (a *App) exportCalendar() {
	buf, filename, err := a.svc.Export.ShiftCalendar(a.svc.Shift.Shifts())
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
