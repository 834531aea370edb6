package model

import "time"

// AstronautDetail 航天员当前状态投影表 — 对应 astronaut_details
// 由任务台账派生的反规范化快照：当前军衔、当前职务、生涯起止
// CareerStartDate 在首条任务创建时写入一次，之后不再变更
type AstronautDetail struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"                      json:"id"`
	PersonID         int64      `gorm:"not null;uniqueIndex:uq_details_person"        json:"person_id"`
	CurrentRank      string     `gorm:"type:varchar(100);not null"                    json:"current_rank"`
	CurrentDutyTitle string     `gorm:"type:varchar(200);not null"                    json:"current_duty_title"`
	CareerStartDate  time.Time  `gorm:"type:date;not null"                            json:"career_start_date"`
	CareerEndDate    *time.Time `gorm:"type:date"                                     json:"career_end_date,omitempty"`
	BaseModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
}

// TableName 指定表名
func (AstronautDetail) TableName() string { return "astronaut_details" }
