package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestIsRetirement(t *testing.T) {
	cases := []struct {
		title string
		want  bool
	}{
		{"RETIRED", true},
		{"retired", true},
		{"Retired", true},
		{"  RETIRED  ", true},
		{"Commander", false},
		{"", false},
		{"RETIREDX", false},
	}

	for _, c := range cases {
		if got := isRetirement(c.title); got != c.want {
			t.Errorf("isRetirement(%q) = %v, 期望 %v", c.title, got, c.want)
		}
	}
}

func TestValidateNewDuty_PersonNotFound(t *testing.T) {
	repo, _ := newMockRepos()

	cmd := &dutyCommand{
		Name:      "Nobody",
		Rank:      "Captain",
		DutyTitle: "Pilot",
		StartDate: mustDate("2024-01-01"),
	}
	_, err := validateNewDuty(context.Background(), repo, cmd)
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("期望 ErrPersonNotFound，得到: %v", err)
	}
}

func TestValidateNewDuty_DuplicateStartDate(t *testing.T) {
	repo, store := newMockRepos()
	p := store.addPerson("Jane Doe")
	store.addDuty(p.ID, "Lieutenant", "Pilot", "2018-03-10", "")

	cmd := &dutyCommand{
		Name:      "Jane Doe",
		Rank:      "Captain",
		DutyTitle: "Commander",
		StartDate: mustDate("2018-03-10"),
	}
	_, err := validateNewDuty(context.Background(), repo, cmd)
	if !errors.Is(err, ErrDuplicateStartDate) {
		t.Fatalf("期望 ErrDuplicateStartDate，得到: %v", err)
	}
}

func TestValidateNewDuty_StartDateGap(t *testing.T) {
	repo, store := newMockRepos()
	p := store.addPerson("Jane Doe")
	store.addDuty(p.ID, "Lieutenant", "Pilot", "2018-03-10", "2019-12-31")

	// 与上一任务结束日期不衔接：应为 2020-01-01
	cmd := &dutyCommand{
		Name:      "Jane Doe",
		Rank:      "Captain",
		DutyTitle: "Commander",
		StartDate: mustDate("2020-02-01"),
	}
	_, err := validateNewDuty(context.Background(), repo, cmd)
	if !errors.Is(err, ErrDutyStartDateGap) {
		t.Fatalf("期望 ErrDutyStartDateGap，得到: %v", err)
	}
	// 错误信息携带期望的衔接日期
	if !strings.Contains(err.Error(), "2020-01-01") {
		t.Errorf("错误信息应包含期望日期 2020-01-01: %v", err)
	}
}

func TestValidateNewDuty_ContinuityOK(t *testing.T) {
	repo, store := newMockRepos()
	p := store.addPerson("Jane Doe")
	store.addDuty(p.ID, "Lieutenant", "Pilot", "2018-03-10", "2019-12-31")

	cmd := &dutyCommand{
		Name:      "Jane Doe",
		Rank:      "Captain",
		DutyTitle: "Commander",
		StartDate: mustDate("2020-01-01"),
	}
	person, err := validateNewDuty(context.Background(), repo, cmd)
	if err != nil {
		t.Fatalf("衔接日期校验不应失败: %v", err)
	}
	if person.ID != p.ID {
		t.Errorf("返回的人员 ID = %d, 期望 %d", person.ID, p.ID)
	}
}

func TestValidateNewDuty_RetirementExemptFromContinuity(t *testing.T) {
	repo, store := newMockRepos()
	p := store.addPerson("Jane Doe")
	store.addDuty(p.ID, "Lieutenant", "Pilot", "2018-03-10", "2019-12-31")

	// 退役任务豁免衔接规则，可从任意日期开始
	cmd := &dutyCommand{
		Name:      "Jane Doe",
		Rank:      "Captain",
		DutyTitle: "retired",
		StartDate: mustDate("2021-06-15"),
	}
	if _, err := validateNewDuty(context.Background(), repo, cmd); err != nil {
		t.Fatalf("退役任务不应受衔接规则约束: %v", err)
	}
}

func TestValidateNewDuty_RequiredFields(t *testing.T) {
	repo, store := newMockRepos()
	store.addPerson("Jane Doe")

	cases := []struct {
		name string
		cmd  *dutyCommand
	}{
		{"军衔缺失", &dutyCommand{Name: "Jane Doe", Rank: "  ", DutyTitle: "Pilot", StartDate: mustDate("2024-01-01")}},
		{"职务缺失", &dutyCommand{Name: "Jane Doe", Rank: "Captain", DutyTitle: "", StartDate: mustDate("2024-01-01")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := validateNewDuty(context.Background(), repo, c.cmd)
			if !errors.Is(err, ErrDutyFieldRequired) {
				t.Fatalf("期望 ErrDutyFieldRequired，得到: %v", err)
			}
		})
	}
}
