package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/repository"
)

// ExportService 导出业务接口
type ExportService interface {
	// ExportRoster 导出人员花名册为 Excel 文件
	ExportRoster(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportDutyCalendar 导出指定人员的任务履历为 iCalendar 文件（每段任务一个全天事件）
	ExportDutyCalendar(ctx context.Context, name string) (string, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportRoster ──────────────────────

func (s *exportService) ExportRoster(ctx context.Context) (*bytes.Buffer, string, error) {
	people, err := s.repo.Person.ListPersonAstronauts(ctx)
	if err != nil {
		s.logger.Error("导出花名册：查询失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Roster"
	f.SetSheetName("Sheet1", sheet)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "姓名", "当前军衔", "当前职务", "生涯开始", "生涯结束"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell(col, 1), h)
	}
	endCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, cell("A", 1), cell(endCol, 1), headerStyle)
	f.SetColWidth(sheet, "B", "D", 22)
	f.SetColWidth(sheet, "E", "F", 14)

	for i := range people {
		p := &people[i]
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), p.PersonID)
		f.SetCellValue(sheet, cell("B", row), p.Name)
		if p.CurrentRank != nil {
			f.SetCellValue(sheet, cell("C", row), *p.CurrentRank)
		}
		if p.CurrentDutyTitle != nil {
			f.SetCellValue(sheet, cell("D", row), *p.CurrentDutyTitle)
		}
		if p.CareerStartDate != nil {
			f.SetCellValue(sheet, cell("E", row), p.CareerStartDate.Format(model.DateOnly))
		}
		if p.CareerEndDate != nil {
			f.SetCellValue(sheet, cell("F", row), p.CareerEndDate.Format(model.DateOnly))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("导出花名册：生成文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("roster-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ────────────────────── ExportDutyCalendar ──────────────────────

func (s *exportService) ExportDutyCalendar(ctx context.Context, name string) (string, string, error) {
	if strings.TrimSpace(name) == "" {
		return "", "", ErrNameRequired
	}

	person, err := s.repo.Person.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrPersonNotFound
		}
		s.logger.Error("导出任务日历：查询人员失败", zap.String("name", name), zap.Error(err))
		return "", "", err
	}

	duties, err := s.repo.AstronautDuty.ListByPerson(ctx, person.ID)
	if err != nil {
		s.logger.Error("导出任务日历：查询台账失败", zap.String("name", name), zap.Error(err))
		return "", "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Stargate HR//Duty History//EN")

	now := time.Now().UTC()
	for i := range duties {
		d := &duties[i]
		ev := cal.AddEvent(fmt.Sprintf("duty-%d@stargate-hr", d.ID))
		ev.SetDtStampTime(now)
		ev.SetSummary(fmt.Sprintf("%s — %s", d.DutyTitle, d.Rank))
		ev.SetDescription(fmt.Sprintf("%s 的任务履历记录 #%d", person.Name, d.ID))
		ev.SetAllDayStartAt(d.DutyStartDate)
		// DTEND 为排他语义：结束日次日；在任记录延伸到今天
		if d.DutyEndDate != nil {
			ev.SetAllDayEndAt(d.DutyEndDate.AddDate(0, 0, 1))
		} else {
			ev.SetAllDayEndAt(model.NormalizeDate(now).AddDate(0, 0, 1))
		}
	}

	filename := fmt.Sprintf("duties-%d.ics", person.ID)
	return cal.Serialize(), filename, nil
}

// ── 单元格辅助 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
