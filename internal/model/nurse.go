package model

// Nurse 护士基础信息 — 只读参考数据，创建班次时使用
type Nurse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
