package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportRoster(t *testing.T) {
	repo, store := newMockRepos()
	p := store.addPerson("Samantha Carter")
	store.addDetail(p.ID, "Colonel", "Commander", "2015-05-01")
	svc := NewExportService(repo, zap.NewNop())

	buf, filename, err := svc.ExportRoster(context.Background())
	if err != nil {
		t.Fatalf("导出花名册失败: %v", err)
	}
	if !strings.HasPrefix(filename, "roster-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式错误: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件无法解析: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Roster", "B2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if name != "Samantha Carter" {
		t.Errorf("B2 = %q, 期望 Samantha Carter", name)
	}
	rank, _ := f.GetCellValue("Roster", "C2")
	if rank != "Colonel" {
		t.Errorf("C2 = %q, 期望 Colonel", rank)
	}
	start, _ := f.GetCellValue("Roster", "E2")
	if start != "2015-05-01" {
		t.Errorf("E2 = %q, 期望 2015-05-01", start)
	}
}

func TestExportDutyCalendar(t *testing.T) {
	repo, store := newMockRepos()
	p := store.addPerson("Jane Doe")
	store.addDuty(p.ID, "Lieutenant", "Pilot", "2018-03-10", "2019-12-31")
	store.addDuty(p.ID, "Captain", "Commander", "2020-01-01", "")
	svc := NewExportService(repo, zap.NewNop())

	body, filename, err := svc.ExportDutyCalendar(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("导出任务日历失败: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名格式错误: %s", filename)
	}

	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Error("输出不是合法的 iCalendar 文档")
	}
	if !strings.Contains(body, "Pilot") || !strings.Contains(body, "Commander") {
		t.Error("事件摘要应包含各段任务的职务")
	}
	// 每段任务一个事件
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("事件数 = %d, 期望 2", got)
	}
}

func TestExportDutyCalendar_BlankName(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportDutyCalendar(context.Background(), "  ")
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("期望 ErrNameRequired，得到: %v", err)
	}
}

func TestExportDutyCalendar_UnknownPerson(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportDutyCalendar(context.Background(), "Nobody")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("期望 ErrPersonNotFound，得到: %v", err)
	}
}
