package model

// LeaveStatus 请假单状态：pending 为初态，approved / rejected 为终态
// 状态迁移仅由护士长的批准 / 拒绝操作驱动
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// DisplayName 状态的用户可见名称（沿用产品的泰语文案）
func (s LeaveStatus) DisplayName() string {
	switch s {
	case LeavePending:
		return "รอการอนุมัติ"
	case LeaveApproved:
		return "อนุมัติแล้ว"
	case LeaveRejected:
		return "ปฏิเสธแล้ว"
	}
	return string(s)
}

// LeaveRequest 请假单：服务端由班次的 leave_requested 状态派生，
// 客户端从不直接构造，只读取与裁决
type LeaveRequest struct {
	ID          int         `json:"id"`
	ShiftID     int         `json:"shiftId"`
	NurseID     int         `json:"nurseId"`
	NurseName   string      `json:"nurseName"`
	Date        string      `json:"date"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	Department  string      `json:"department"`
	Status      LeaveStatus `json:"status"`
	RequestedAt string      `json:"requestedAt"`
}
