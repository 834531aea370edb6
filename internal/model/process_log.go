package model

import "time"

// 过程日志级别
const (
	ProcessLogInfo    = "INFO"
	ProcessLogSuccess = "SUCCESS"
	ProcessLogWarning = "WARNING"
	ProcessLogError   = "ERROR"
)

// ProcessLog 过程日志表 — 对应 process_logs
// 写操作的审计落库记录；写入失败不影响业务请求本身
type ProcessLog struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"   json:"id"`
	Timestamp   time.Time `gorm:"not null;index"             json:"timestamp"`
	Level       string    `gorm:"type:varchar(20);not null;index" json:"level"`
	Message     string    `gorm:"type:varchar(1000);not null" json:"message"`
	Method      string    `gorm:"type:varchar(10)"           json:"method,omitempty"`
	Path        string    `gorm:"type:varchar(200)"          json:"path,omitempty"`
	RequestID   string    `gorm:"type:varchar(64)"           json:"request_id,omitempty"`
	RequestData string    `gorm:"type:varchar(2000)"         json:"request_data,omitempty"`
}

// TableName 指定表名
func (ProcessLog) TableName() string { return "process_logs" }
