package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"new-family/internal/model"
	"new-family/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByGoogleSub(_ context.Context, sub string) (*model.User, error) {
	for _, u := range m.users {
		if u.GoogleSub != nil && *u.GoogleSub == sub {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock NewComerRepository ──

type mockNewComerRepo struct {
	rows map[int64]*model.NewComer
	seq  int64
}

func newMockNewComerRepo() *mockNewComerRepo {
	return &mockNewComerRepo{rows: make(map[int64]*model.NewComer)}
}

func (m *mockNewComerRepo) Create(_ context.Context, nc *model.NewComer) error {
	m.seq++
	nc.ID = m.seq
	nc.CreatedAt = time.Now()
	nc.UpdatedAt = time.Now()
	cp := *nc
	m.rows[nc.ID] = &cp
	return nil
}

func (m *mockNewComerRepo) GetByID(_ context.Context, id int64) (*model.NewComer, error) {
	if nc, ok := m.rows[id]; ok {
		cp := *nc
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNewComerRepo) Update(_ context.Context, nc *model.NewComer) error {
	if _, ok := m.rows[nc.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	nc.UpdatedAt = time.Now()
	cp := *nc
	m.rows[nc.ID] = &cp
	return nil
}

func (m *mockNewComerRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *mockNewComerRepo) List(_ context.Context, filters *repository.NewComerListFilters, offset, limit int) ([]model.NewComer, int64, error) {
	var all []model.NewComer
	for _, nc := range m.rows {
		if filters != nil {
			if filters.Year != 0 && nc.Year != filters.Year {
				continue
			}
			if filters.Department != "" && nc.Department != filters.Department {
				continue
			}
			if filters.BelieverType != "" && nc.BelieverType != filters.BelieverType {
				continue
			}
			if filters.EducationType != "" && nc.EducationType != filters.EducationType {
				continue
			}
			if filters.Name != "" && !strings.Contains(nc.Name, filters.Name) {
				continue
			}
		}
		all = append(all, *nc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockNewComerRepo) ListByScope(_ context.Context, year int, department string, believerType model.BelieverType) ([]model.NewComer, error) {
	var result []model.NewComer
	for _, nc := range m.rows {
		if nc.Year == year && nc.Department == department && nc.BelieverType == believerType {
			result = append(result, *nc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockNewComerRepo) UpdateNumber(_ context.Context, id int64, number string) error {
	nc, ok := m.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	nc.Number = number
	return nil
}

func (m *mockNewComerRepo) FindByNameAndBirthDate(_ context.Context, name, birthDate string) ([]model.NewComer, error) {
	var result []model.NewComer
	for _, nc := range m.rows {
		if nc.Name == name && nc.BirthDate == birthDate {
			result = append(result, *nc)
		}
	}
	return result, nil
}

func (m *mockNewComerRepo) ListByYear(_ context.Context, year int) ([]model.NewComer, error) {
	var result []model.NewComer
	for _, nc := range m.rows {
		if nc.Year == year {
			result = append(result, *nc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock EducationRepository ──

type mockEducationRepo struct {
	rows map[int64]*model.NewComerEducation // new_comer_id 기준
	seq  int64
}

func newMockEducationRepo() *mockEducationRepo {
	return &mockEducationRepo{rows: make(map[int64]*model.NewComerEducation)}
}

func (m *mockEducationRepo) GetByNewComerID(_ context.Context, newComerID int64) (*model.NewComerEducation, error) {
	if e, ok := m.rows[newComerID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEducationRepo) Create(_ context.Context, edu *model.NewComerEducation) error {
	m.seq++
	edu.ID = m.seq
	edu.UpdatedAt = time.Now()
	cp := *edu
	m.rows[edu.NewComerID] = &cp
	return nil
}

func (m *mockEducationRepo) Update(_ context.Context, edu *model.NewComerEducation) error {
	if _, ok := m.rows[edu.NewComerID]; !ok {
		return gorm.ErrRecordNotFound
	}
	edu.UpdatedAt = time.Now()
	cp := *edu
	m.rows[edu.NewComerID] = &cp
	return nil
}

// ── Mock GraduateRepository ──

type mockGraduateRepo struct {
	rows map[int64]*model.Graduate
	seq  int64
}

func newMockGraduateRepo() *mockGraduateRepo {
	return &mockGraduateRepo{rows: make(map[int64]*model.Graduate)}
}

func (m *mockGraduateRepo) Create(_ context.Context, g *model.Graduate) error {
	m.seq++
	g.ID = m.seq
	g.CreatedAt = time.Now()
	cp := *g
	m.rows[g.ID] = &cp
	return nil
}

func (m *mockGraduateRepo) GetByID(_ context.Context, id int64) (*model.Graduate, error) {
	if g, ok := m.rows[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGraduateRepo) GetByNewComerID(_ context.Context, newComerID int64) (*model.Graduate, error) {
	for _, g := range m.rows {
		if g.NewComerID != nil && *g.NewComerID == newComerID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGraduateRepo) List(_ context.Context, filters *repository.GraduateListFilters, offset, limit int) ([]model.Graduate, int64, error) {
	var all []model.Graduate
	for _, g := range m.rows {
		if filters != nil {
			if filters.Year != 0 && g.Year != filters.Year {
				continue
			}
			if filters.Department != "" && g.Department != filters.Department {
				continue
			}
			if filters.BelieverType != "" && g.BelieverType != filters.BelieverType {
				continue
			}
			if filters.Name != "" && !strings.Contains(g.Name, filters.Name) {
				continue
			}
		}
		all = append(all, *g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockGraduateRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *mockGraduateRepo) IncrementPrintCount(_ context.Context, id int64) (int, error) {
	g, ok := m.rows[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	g.PrintCount++
	return g.PrintCount, nil
}

func (m *mockGraduateRepo) ListByYear(_ context.Context, year int) ([]model.Graduate, error) {
	var result []model.Graduate
	for _, g := range m.rows {
		if g.Year == year {
			result = append(result, *g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock SequenceRepository ──

type mockSequenceRepo struct {
	counters map[string]int
}

func newMockSequenceRepo() *mockSequenceRepo {
	return &mockSequenceRepo{counters: make(map[string]int)}
}

func seqKey(scope model.SequenceScope, department, believerType string, year int) string {
	return fmt.Sprintf("%s|%s|%s|%d", scope, department, believerType, year)
}

func (m *mockSequenceRepo) Next(_ context.Context, scope model.SequenceScope, department, believerType string, year int) (int, error) {
	k := seqKey(scope, department, believerType, year)
	m.counters[k]++
	return m.counters[k], nil
}

func (m *mockSequenceRepo) Peek(_ context.Context, scope model.SequenceScope, department, believerType string, year int) (int, error) {
	return m.counters[seqKey(scope, department, believerType, year)] + 1, nil
}

func (m *mockSequenceRepo) Reset(_ context.Context, scope model.SequenceScope, department, believerType string, year, lastSeq int) error {
	m.counters[seqKey(scope, department, believerType, year)] = lastSeq
	return nil
}

// ── Mock CodeRepository ──

type mockCodeRepo struct {
	groups  map[string]*model.CodeGroup
	details map[string]*model.CodeDetail
	seq     int
}

func newMockCodeRepo() *mockCodeRepo {
	return &mockCodeRepo{
		groups:  make(map[string]*model.CodeGroup),
		details: make(map[string]*model.CodeDetail),
	}
}

func (m *mockCodeRepo) CreateGroup(_ context.Context, group *model.CodeGroup) error {
	if group.GroupID == "" {
		m.seq++
		group.GroupID = fmt.Sprintf("group-%d", m.seq)
	}
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockCodeRepo) GetGroupByID(_ context.Context, id string) (*model.CodeGroup, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCodeRepo) GetGroupByCode(_ context.Context, groupCode string) (*model.CodeGroup, error) {
	for _, g := range m.groups {
		if g.GroupCode == groupCode {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCodeRepo) ListGroups(_ context.Context) ([]model.CodeGroup, error) {
	var result []model.CodeGroup
	for _, g := range m.groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GroupCode < result[j].GroupCode })
	return result, nil
}

func (m *mockCodeRepo) UpdateGroup(_ context.Context, group *model.CodeGroup) error {
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockCodeRepo) DeleteGroup(_ context.Context, id string) error {
	delete(m.groups, id)
	for detailID, d := range m.details {
		if d.GroupID == id {
			delete(m.details, detailID)
		}
	}
	return nil
}

func (m *mockCodeRepo) CreateDetail(_ context.Context, detail *model.CodeDetail) error {
	if detail.CodeID == "" {
		m.seq++
		detail.CodeID = fmt.Sprintf("code-%d", m.seq)
	}
	m.details[detail.CodeID] = detail
	return nil
}

func (m *mockCodeRepo) GetDetailByID(_ context.Context, id string) (*model.CodeDetail, error) {
	if d, ok := m.details[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCodeRepo) GetDetailByValue(_ context.Context, groupID, codeValue string) (*model.CodeDetail, error) {
	for _, d := range m.details {
		if d.GroupID == groupID && d.CodeValue == codeValue {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCodeRepo) ListDetails(_ context.Context, groupID string) ([]model.CodeDetail, error) {
	var result []model.CodeDetail
	for _, d := range m.details {
		if d.GroupID == groupID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockCodeRepo) UpdateDetail(_ context.Context, detail *model.CodeDetail) error {
	m.details[detail.CodeID] = detail
	return nil
}

func (m *mockCodeRepo) DeleteDetail(_ context.Context, id string) error {
	delete(m.details, id)
	return nil
}

// ── Mock MenuRepository ──

type mockMenuRepo struct {
	menus map[string]*model.Menu
	seq   int
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{menus: make(map[string]*model.Menu)}
}

func (m *mockMenuRepo) Create(_ context.Context, menu *model.Menu) error {
	if menu.MenuID == "" {
		m.seq++
		menu.MenuID = fmt.Sprintf("menu-%d", m.seq)
	}
	m.menus[menu.MenuID] = menu
	return nil
}

func (m *mockMenuRepo) GetByID(_ context.Context, id string) (*model.Menu, error) {
	if menu, ok := m.menus[id]; ok {
		return menu, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) List(_ context.Context, includeInactive bool) ([]model.Menu, error) {
	var result []model.Menu
	for _, menu := range m.menus {
		if !includeInactive && !menu.IsActive {
			continue
		}
		result = append(result, *menu)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockMenuRepo) Update(_ context.Context, menu *model.Menu) error {
	m.menus[menu.MenuID] = menu
	return nil
}

func (m *mockMenuRepo) Delete(_ context.Context, id string) error {
	delete(m.menus, id)
	return nil
}

// ── Mock SystemConstantRepository ──

type mockSystemConstantRepo struct {
	constants map[string]*model.SystemConstant
}

func newMockSystemConstantRepo() *mockSystemConstantRepo {
	return &mockSystemConstantRepo{constants: make(map[string]*model.SystemConstant)}
}

func (m *mockSystemConstantRepo) set(key, value string) {
	m.constants[key] = &model.SystemConstant{Key: key, Value: value}
}

func (m *mockSystemConstantRepo) Get(_ context.Context, key string) (*model.SystemConstant, error) {
	if c, ok := m.constants[key]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSystemConstantRepo) List(_ context.Context) ([]model.SystemConstant, error) {
	var result []model.SystemConstant
	for _, c := range m.constants {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (m *mockSystemConstantRepo) Update(_ context.Context, constant *model.SystemConstant) error {
	m.constants[constant.Key] = constant
	return nil
}

// ── Mock FileRepository ──

type mockFileRepo struct {
	files map[string]*model.UploadedFile
	seq   int
}

func newMockFileRepo() *mockFileRepo {
	return &mockFileRepo{files: make(map[string]*model.UploadedFile)}
}

func (m *mockFileRepo) Create(_ context.Context, file *model.UploadedFile) error {
	if file.FileID == "" {
		m.seq++
		file.FileID = fmt.Sprintf("file-%d", m.seq)
	}
	m.files[file.FileID] = file
	return nil
}

func (m *mockFileRepo) GetByID(_ context.Context, id string) (*model.UploadedFile, error) {
	if f, ok := m.files[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFileRepo) Delete(_ context.Context, id string) error {
	delete(m.files, id)
	return nil
}

// ── Mock StatisticsRepository ──

type mockStatisticsRepo struct {
	yearly     map[int][]model.YearlyStatistics
	monthlyAge map[int][]model.MonthlyAgeStatistics
}

func newMockStatisticsRepo() *mockStatisticsRepo {
	return &mockStatisticsRepo{
		yearly:     make(map[int][]model.YearlyStatistics),
		monthlyAge: make(map[int][]model.MonthlyAgeStatistics),
	}
}

func (m *mockStatisticsRepo) ReplaceYearly(_ context.Context, year int, rows []model.YearlyStatistics) error {
	m.yearly[year] = rows
	return nil
}

func (m *mockStatisticsRepo) ListYearly(_ context.Context, year int) ([]model.YearlyStatistics, error) {
	return m.yearly[year], nil
}

func (m *mockStatisticsRepo) ReplaceMonthlyAge(_ context.Context, year int, rows []model.MonthlyAgeStatistics) error {
	m.monthlyAge[year] = rows
	return nil
}

func (m *mockStatisticsRepo) ListMonthlyAge(_ context.Context, year int) ([]model.MonthlyAgeStatistics, error) {
	return m.monthlyAge[year], nil
}

// ── Mock TxManager ──

// mockTxManager 인메모리 저장소에는 롤백이 없으므로 같은 Repository로 fn을 실행한다
type mockTxManager struct {
	repo *repository.Repository
}

func (m *mockTxManager) Transaction(_ context.Context, fn func(r *repository.Repository) error) error {
	return fn(m.repo)
}

// newTestRepository 모든 mock이 연결된 Repository 집약 생성
func newTestRepository() *repository.Repository {
	repo := &repository.Repository{
		User:           newMockUserRepo(),
		NewComer:       newMockNewComerRepo(),
		Education:      newMockEducationRepo(),
		Graduate:       newMockGraduateRepo(),
		Sequence:       newMockSequenceRepo(),
		Code:           newMockCodeRepo(),
		Menu:           newMockMenuRepo(),
		SystemConstant: newMockSystemConstantRepo(),
		File:           newMockFileRepo(),
		Statistics:     newMockStatisticsRepo(),
	}
	repo.Tx = &mockTxManager{repo: repo}
	return repo
}
