package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// DateOnly 日期序列化统一格式（任务与生涯日期均为日粒度）
const DateOnly = "2006-01-02"

// NormalizeDate 将时间截断到日粒度（UTC 零点）
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
