package dto

// ── 人员模块 DTO ──

// CreatePersonRequest 创建人员请求
type CreatePersonRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// RenamePersonRequest 人员重命名请求（姓名是查找键，id 保持不变）
type RenamePersonRequest struct {
	NewName string `json:"new_name" binding:"required,min=1,max=200"`
}

// PersonResponse 人员基础信息响应
type PersonResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PersonAstronautResponse 人员与当前航天状态联合读模型
// 优先取状态投影字段，缺失时回退到在任任务记录的军衔/职务
type PersonAstronautResponse struct {
	PersonID         int64  `json:"person_id"`
	Name             string `json:"name"`
	CurrentRank      string `json:"current_rank,omitempty"`
	CurrentDutyTitle string `json:"current_duty_title,omitempty"`
	CareerStartDate  string `json:"career_start_date,omitempty"`
	CareerEndDate    string `json:"career_end_date,omitempty"`
}
