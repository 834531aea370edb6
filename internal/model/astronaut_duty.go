package model

import "time"

// AstronautDuty 航天任务台账表 — 对应 astronaut_duties
// DutyEndDate 为空表示在任记录；同一人任意时刻至多一条在任记录
type AstronautDuty struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"                                        json:"id"`
	PersonID      int64      `gorm:"not null;uniqueIndex:uq_duties_person_start"                     json:"person_id"`
	Rank          string     `gorm:"type:varchar(100);not null"                                      json:"rank"`
	DutyTitle     string     `gorm:"type:varchar(200);not null"                                      json:"duty_title"`
	DutyStartDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_duties_person_start"           json:"duty_start_date"`
	DutyEndDate   *time.Time `gorm:"type:date"                                                       json:"duty_end_date,omitempty"`
	BaseModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
}

// TableName 指定表名
func (AstronautDuty) TableName() string { return "astronaut_duties" }

// IsOpen 是否为在任记录
func (d *AstronautDuty) IsOpen() bool { return d.DutyEndDate == nil }
