package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/repository"
)

// ── 内存数据存储 ──
//
// 联合读模型需要跨表数据，各 mock 仓库共享同一个 store

type mockStore struct {
	people  map[int64]*model.Person
	duties  map[int64]*model.AstronautDuty
	details map[int64]*model.AstronautDetail
	logs    []model.ProcessLog

	nextPersonID, nextDutyID, nextDetailID int64
}

func newMockStore() *mockStore {
	return &mockStore{
		people:  make(map[int64]*model.Person),
		duties:  make(map[int64]*model.AstronautDuty),
		details: make(map[int64]*model.AstronautDetail),
	}
}

// newMockRepos 构建绑定到共享 store 的仓库聚合
func newMockRepos() (*repository.Repository, *mockStore) {
	store := newMockStore()
	return &repository.Repository{
		Person:          &mockPersonRepo{store: store},
		AstronautDuty:   &mockDutyRepo{store: store},
		AstronautDetail: &mockDetailRepo{store: store},
		ProcessLog:      &mockProcessLogRepo{store: store},
	}, store
}

// ── 种子数据辅助 ──

func (s *mockStore) addPerson(name string) *model.Person {
	s.nextPersonID++
	p := &model.Person{ID: s.nextPersonID, Name: name}
	s.people[p.ID] = p
	return p
}

func (s *mockStore) addDuty(personID int64, rank, title, start string, end string) *model.AstronautDuty {
	s.nextDutyID++
	d := &model.AstronautDuty{
		ID:            s.nextDutyID,
		PersonID:      personID,
		Rank:          rank,
		DutyTitle:     title,
		DutyStartDate: mustDate(start),
	}
	if end != "" {
		e := mustDate(end)
		d.DutyEndDate = &e
	}
	s.duties[d.ID] = d
	return d
}

func (s *mockStore) addDetail(personID int64, rank, title, careerStart string) *model.AstronautDetail {
	s.nextDetailID++
	d := &model.AstronautDetail{
		ID:               s.nextDetailID,
		PersonID:         personID,
		CurrentRank:      rank,
		CurrentDutyTitle: title,
		CareerStartDate:  mustDate(careerStart),
	}
	s.details[d.ID] = d
	return d
}

func mustDate(s string) time.Time {
	t, err := time.Parse(model.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return model.NormalizeDate(t)
}

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	store *mockStore
}

func (m *mockPersonRepo) Create(_ context.Context, person *model.Person) error {
	m.store.nextPersonID++
	person.ID = m.store.nextPersonID
	cp := *person
	m.store.people[person.ID] = &cp
	return nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id int64) (*model.Person, error) {
	if p, ok := m.store.people[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) GetByName(_ context.Context, name string) (*model.Person, error) {
	for _, p := range m.store.people {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) Update(_ context.Context, person *model.Person) error {
	cp := *person
	m.store.people[person.ID] = &cp
	return nil
}

func (m *mockPersonRepo) GetPersonAstronautByName(ctx context.Context, name string) (*model.PersonAstronaut, error) {
	for _, p := range m.store.people {
		if p.Name == name {
			row := m.store.buildPersonAstronaut(p)
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) ListPersonAstronauts(_ context.Context) ([]model.PersonAstronaut, error) {
	var rows []model.PersonAstronaut
	for _, p := range m.store.people {
		if !m.store.hasAstronautRecord(p.ID) {
			continue
		}
		rows = append(rows, m.store.buildPersonAstronaut(p))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (s *mockStore) hasAstronautRecord(personID int64) bool {
	for _, d := range s.details {
		if d.PersonID == personID {
			return true
		}
	}
	for _, d := range s.duties {
		if d.PersonID == personID {
			return true
		}
	}
	return false
}

// buildPersonAstronaut 投影优先，回退在任记录
func (s *mockStore) buildPersonAstronaut(p *model.Person) model.PersonAstronaut {
	row := model.PersonAstronaut{PersonID: p.ID, Name: p.Name}

	for _, d := range s.details {
		if d.PersonID == p.ID {
			rank, title := d.CurrentRank, d.CurrentDutyTitle
			start := d.CareerStartDate
			row.CurrentRank = &rank
			row.CurrentDutyTitle = &title
			row.CareerStartDate = &start
			if d.CareerEndDate != nil {
				end := *d.CareerEndDate
				row.CareerEndDate = &end
			}
			return row
		}
	}

	var open *model.AstronautDuty
	for _, d := range s.duties {
		if d.PersonID == p.ID && d.DutyEndDate == nil {
			if open == nil || d.DutyStartDate.After(open.DutyStartDate) {
				open = d
			}
		}
	}
	if open != nil {
		rank, title := open.Rank, open.DutyTitle
		row.CurrentRank = &rank
		row.CurrentDutyTitle = &title
	}
	return row
}

// ── Mock AstronautDutyRepository ──

type mockDutyRepo struct {
	store *mockStore
}

func (m *mockDutyRepo) Create(_ context.Context, duty *model.AstronautDuty) error {
	// 与库表的部分唯一索引语义一致：同一人至多一条在任记录
	if duty.DutyEndDate == nil {
		for _, d := range m.store.duties {
			if d.PersonID == duty.PersonID && d.DutyEndDate == nil {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	// 同一人同一开始日期唯一
	for _, d := range m.store.duties {
		if d.PersonID == duty.PersonID && d.DutyStartDate.Equal(duty.DutyStartDate) {
			return gorm.ErrDuplicatedKey
		}
	}
	m.store.nextDutyID++
	duty.ID = m.store.nextDutyID
	cp := *duty
	m.store.duties[duty.ID] = &cp
	return nil
}

func (m *mockDutyRepo) GetByID(_ context.Context, id int64) (*model.AstronautDuty, error) {
	if d, ok := m.store.duties[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDutyRepo) Update(_ context.Context, duty *model.AstronautDuty) error {
	cp := *duty
	m.store.duties[duty.ID] = &cp
	return nil
}

func (m *mockDutyRepo) GetOpenDuty(_ context.Context, personID int64) (*model.AstronautDuty, error) {
	var open *model.AstronautDuty
	for _, d := range m.store.duties {
		if d.PersonID == personID && d.DutyEndDate == nil {
			if open == nil || d.DutyStartDate.After(open.DutyStartDate) {
				open = d
			}
		}
	}
	if open == nil {
		return nil, nil
	}
	cp := *open
	return &cp, nil
}

func (m *mockDutyRepo) ListOpenDuties(_ context.Context, personID int64) ([]model.AstronautDuty, error) {
	var duties []model.AstronautDuty
	for _, d := range m.store.duties {
		if d.PersonID == personID && d.DutyEndDate == nil {
			duties = append(duties, *d)
		}
	}
	sort.Slice(duties, func(i, j int) bool {
		return duties[i].DutyStartDate.After(duties[j].DutyStartDate)
	})
	return duties, nil
}

func (m *mockDutyRepo) GetLatestClosedDuty(_ context.Context, personID int64) (*model.AstronautDuty, error) {
	var latest *model.AstronautDuty
	for _, d := range m.store.duties {
		if d.PersonID == personID && d.DutyEndDate != nil {
			if latest == nil || d.DutyEndDate.After(*latest.DutyEndDate) {
				latest = d
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (m *mockDutyRepo) GetByPersonAndDate(_ context.Context, personID int64, startDate time.Time) (*model.AstronautDuty, error) {
	day := model.NormalizeDate(startDate)
	for _, d := range m.store.duties {
		if d.PersonID == personID && d.DutyStartDate.Equal(day) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockDutyRepo) ListByPerson(_ context.Context, personID int64) ([]model.AstronautDuty, error) {
	var duties []model.AstronautDuty
	for _, d := range m.store.duties {
		if d.PersonID == personID {
			duties = append(duties, *d)
		}
	}
	sort.Slice(duties, func(i, j int) bool {
		return duties[i].DutyStartDate.After(duties[j].DutyStartDate)
	})
	return duties, nil
}

func (m *mockDutyRepo) CountOtherOpenDuties(_ context.Context, personID, excludeID int64) (int64, error) {
	var count int64
	for _, d := range m.store.duties {
		if d.PersonID == personID && d.ID != excludeID && d.DutyEndDate == nil {
			count++
		}
	}
	return count, nil
}

// ── Mock AstronautDetailRepository ──

type mockDetailRepo struct {
	store *mockStore
}

func (m *mockDetailRepo) Create(_ context.Context, detail *model.AstronautDetail) error {
	m.store.nextDetailID++
	detail.ID = m.store.nextDetailID
	cp := *detail
	m.store.details[detail.ID] = &cp
	return nil
}

func (m *mockDetailRepo) GetByPersonID(_ context.Context, personID int64) (*model.AstronautDetail, error) {
	for _, d := range m.store.details {
		if d.PersonID == personID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockDetailRepo) Update(_ context.Context, detail *model.AstronautDetail) error {
	cp := *detail
	m.store.details[detail.ID] = &cp
	return nil
}

// ── Mock ProcessLogRepository ──

type mockProcessLogRepo struct {
	store   *mockStore
	failAll bool // 模拟落库失败
}

func (m *mockProcessLogRepo) Create(_ context.Context, log *model.ProcessLog) error {
	if m.failAll {
		return gorm.ErrInvalidDB
	}
	log.ID = int64(len(m.store.logs) + 1)
	m.store.logs = append(m.store.logs, *log)
	return nil
}

func (m *mockProcessLogRepo) ListRecent(_ context.Context, level string, limit int) ([]model.ProcessLog, error) {
	var logs []model.ProcessLog
	for i := len(m.store.logs) - 1; i >= 0; i-- {
		if level != "" && !strings.EqualFold(m.store.logs[i].Level, level) {
			continue
		}
		logs = append(logs, m.store.logs[i])
		if limit > 0 && len(logs) >= limit {
			break
		}
	}
	return logs, nil
}
