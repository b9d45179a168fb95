package cli

import (
	"context"
	"fmt"

	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/service"
)

// signInView 登录页：登录 / 注册 / 退出；返回 true 表示退出应用
func (a *App) signInView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "── ระบบจัดการเวรพยาบาล ──")
	fmt.Fprintln(a.out, "1) เข้าสู่ระบบ  2) ลงทะเบียน  q) ออก")

	switch a.prompt("เลือก") {
	case "1":
		a.signIn(ctx)
	case "2":
		a.register(ctx)
	case "q":
		return true
	}
	return false
}

func (a *App) signIn(ctx context.Context) {
	email := a.prompt("ชื่อผู้ใช้")
	password := a.prompt("รหัสผ่าน")

	sess, landing, err := a.svc.Auth.SignIn(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "เข้าสู่ระบบไม่สำเร็จ: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "สวัสดี, %s\n", sess.Name)
	a.route = landing
}

func (a *App) register(ctx context.Context) {
	input := &service.RegisterInput{
		Username:        a.prompt("ชื่อผู้ใช้"),
		Name:            a.prompt("ชื่อ-นามสกุล"),
		Password:        a.prompt("รหัสผ่าน (อย่างน้อย 6 ตัวอักษร)"),
		ConfirmPassword: a.prompt("ยืนยันรหัสผ่าน"),
	}
	if a.confirm("ลงทะเบียนเป็นหัวหน้าพยาบาลหรือไม่") {
		input.Role = model.RoleHeadNurse
	} else {
		input.Role = model.RoleNurse
	}

	if err := a.svc.Auth.Register(ctx, input); err != nil {
		fmt.Fprintf(a.out, "เกิดข้อผิดพลาดในการลงทะเบียน: %v\n", err)
		return
	}
	// 注册成功不产生会话副作用，回到登录页
	fmt.Fprintln(a.out, "ลงทะเบียนสำเร็จ! กรุณาเข้าสู่ระบบ")
}
