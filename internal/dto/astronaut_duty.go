package dto

// ── 航天任务模块 DTO ──

// CreateAstronautDutyRequest 创建任务记录请求
// 日期均为日粒度，格式 2006-01-02
type CreateAstronautDutyRequest struct {
	Name          string `json:"name"            binding:"required,min=1,max=200"`
	Rank          string `json:"rank"            binding:"required,min=1,max=100"`
	DutyTitle     string `json:"duty_title"      binding:"required,min=1,max=200"`
	DutyStartDate string `json:"duty_start_date" binding:"required,datetime=2006-01-02"`
}

// UpdateAstronautDutyRequest 修订任务记录请求（未提供的字段保持不变）
type UpdateAstronautDutyRequest struct {
	DutyTitle     *string `json:"duty_title"      binding:"omitempty,min=1,max=200"`
	Rank          *string `json:"rank"            binding:"omitempty,min=1,max=100"`
	DutyStartDate *string `json:"duty_start_date" binding:"omitempty,datetime=2006-01-02"`
	DutyEndDate   *string `json:"duty_end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// AstronautDutyResponse 任务记录响应
type AstronautDutyResponse struct {
	ID            int64  `json:"id"`
	PersonID      int64  `json:"person_id"`
	Rank          string `json:"rank"`
	DutyTitle     string `json:"duty_title"`
	DutyStartDate string `json:"duty_start_date"`
	DutyEndDate   string `json:"duty_end_date,omitempty"`
}

// CreateAstronautDutyResponse 创建任务记录结果
type CreateAstronautDutyResponse struct {
	ID int64 `json:"id"`
}

// UpdateAstronautDutyResponse 修订任务记录结果
// RetirementCreated 表示本次修订是否级联生成了 RETIRED 记录
type UpdateAstronautDutyResponse struct {
	Duty              AstronautDutyResponse `json:"duty"`
	RetirementCreated bool                  `json:"retirement_created"`
}

// AstronautDutiesByNameResponse 按姓名查询任务台账结果
// Person 为空表示查无此人（查询视为成功的空结果）
type AstronautDutiesByNameResponse struct {
	Person *PersonAstronautResponse `json:"person"`
	Duties []AstronautDutyResponse  `json:"duties"`
}
