package handler

import "github.com/HarringtonR/stargate-api/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Person        *PersonHandler
	AstronautDuty *AstronautDutyHandler
	Export        *ExportHandler
	ProcessLog    *ProcessLogHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Person:        NewPersonHandler(svc.Person),
		AstronautDuty: NewAstronautDutyHandler(svc.AstronautDuty),
		Export:        NewExportHandler(svc.Export),
		ProcessLog:    NewProcessLogHandler(svc.ProcessLog),
	}
}
