package model

import "time"

// PersonAstronaut 人员与当前航天状态联合读模型（无对应表，仅用于查询扫描）
// CurrentRank/CurrentDutyTitle 取投影字段，投影缺失时回退到在任任务记录
type PersonAstronaut struct {
	PersonID         int64      `json:"person_id"`
	Name             string     `json:"name"`
	CurrentRank      *string    `json:"current_rank,omitempty"`
	CurrentDutyTitle *string    `json:"current_duty_title,omitempty"`
	CareerStartDate  *time.Time `json:"career_start_date,omitempty"`
	CareerEndDate    *time.Time `json:"career_end_date,omitempty"`
}
