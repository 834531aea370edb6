package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/repository"
)

// ── 任务模块业务错误 ──

var (
	ErrPersonNotFound     = errors.New("人员不存在")
	ErrDutyNotFound       = errors.New("任务记录不存在")
	ErrDuplicateStartDate = errors.New("同一人员同一开始日期只允许一条任务记录")
	ErrDutyStartDateGap   = errors.New("任务开始日期与上一任务不衔接")
	ErrDutyFieldRequired  = errors.New("任务字段不能为空")
	ErrNameRequired       = errors.New("姓名不能为空")
)

// retiredDutyTitle 退役任务的职务标识（大小写不敏感的标记值，不是自由文本）
const retiredDutyTitle = "RETIRED"

// isRetirement 判断职务是否为退役标记
// 退役判定集中在此处，任何新增规则不得散落比较字符串
func isRetirement(title string) bool {
	return strings.ToUpper(strings.TrimSpace(title)) == retiredDutyTitle
}

// dutyCommand 经过解析的创建任务命令（日期已规整到日粒度）
type dutyCommand struct {
	Name      string
	Rank      string
	DutyTitle string
	StartDate time.Time
}

// validateNewDuty 任务创建前置校验（§准入规则，全部通过才允许进入写入阶段）
//
// 规则按序执行，任一失败立即终止，不做任何写入：
//  1. 人员必须存在（姓名精确匹配）
//  2. 同一人员不允许重复的开始日期（日粒度）
//  3. 非退役任务且存在已结束记录时，开始日期必须等于最近结束日期的次日
//  4. 在任记录不附加额外日期约束——它会在写入阶段被关闭到新任务开始日的前一天
//     （历史实现此处的校验恒成立，属于逻辑空转，这里按既定语义不再编码）
//  5. 军衔、职务、开始日期必填
//
// 退役任务（RETIRED）豁免规则 3：退役可以从任意日期开始
func validateNewDuty(ctx context.Context, repo *repository.Repository, cmd *dutyCommand) (*model.Person, error) {
	// 规则 1：人员存在
	person, err := repo.Person.GetByName(ctx, cmd.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("姓名为 %q 的人员不存在: %w", cmd.Name, ErrPersonNotFound)
		}
		return nil, err
	}

	// 规则 2：开始日期唯一
	existing, err := repo.AstronautDuty.GetByPersonAndDate(ctx, person.ID, cmd.StartDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%q 在 %s 已存在任务记录: %w",
			cmd.Name, cmd.StartDate.Format(model.DateOnly), ErrDuplicateStartDate)
	}

	// 规则 3：与最近结束记录衔接（退役豁免）
	if !isRetirement(cmd.DutyTitle) {
		lastEnded, err := repo.AstronautDuty.GetLatestClosedDuty(ctx, person.ID)
		if err != nil {
			return nil, err
		}
		if lastEnded != nil && lastEnded.DutyEndDate != nil {
			expected := model.NormalizeDate(lastEnded.DutyEndDate.AddDate(0, 0, 1))
			if !cmd.StartDate.Equal(expected) {
				return nil, fmt.Errorf("新任务开始日期应为 %s（上一任务结束日期 %s 的次日），实际为 %s: %w",
					expected.Format(model.DateOnly),
					lastEnded.DutyEndDate.Format(model.DateOnly),
					cmd.StartDate.Format(model.DateOnly),
					ErrDutyStartDateGap)
			}
		}
	}

	// 规则 4：在任记录无额外约束，写入阶段会在同一事务内将其关闭

	// 规则 5：必填字段
	if strings.TrimSpace(cmd.Rank) == "" {
		return nil, fmt.Errorf("军衔必填: %w", ErrDutyFieldRequired)
	}
	if strings.TrimSpace(cmd.DutyTitle) == "" {
		return nil, fmt.Errorf("职务必填: %w", ErrDutyFieldRequired)
	}
	if cmd.StartDate.IsZero() {
		return nil, fmt.Errorf("任务开始日期必填: %w", ErrDutyFieldRequired)
	}

	return person, nil
}
