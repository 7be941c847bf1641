package service

import (
	"context"
	"mime/multipart"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/events"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/storage"
)

// memDB 모든 mock Repository 가 공유하는 메모리 저장소
// err 가 설정되면 모든 호출이 그 오류로 실패한다
type memDB struct {
	seekers    map[string]*model.JobSeeker
	employers  map[string]*model.Employer
	postings   map[uint64]*model.Posting
	normal     map[string]*model.NormalInformation
	grade      map[string]*model.GradeInformation
	activities map[uint64]*model.ExperienceActivity
	nextID     uint64
	now        time.Time
	err        error
}

func newMemDB() *memDB {
	return &memDB{
		seekers:    make(map[string]*model.JobSeeker),
		employers:  make(map[string]*model.Employer),
		postings:   make(map[uint64]*model.Posting),
		normal:     make(map[string]*model.NormalInformation),
		grade:      make(map[string]*model.GradeInformation),
		activities: make(map[uint64]*model.ExperienceActivity),
		now:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memDB) repository() *repository.Repository {
	return &repository.Repository{
		JobSeeker:  &mockJobSeekerRepo{m},
		Employer:   &mockEmployerRepo{m},
		Posting:    &mockPostingRepo{m},
		NormalInfo: &mockNormalInfoRepo{m},
		GradeInfo:  &mockGradeInfoRepo{m},
		Activity:   &mockActivityRepo{m},
	}
}

func (m *memDB) id() uint64 {
	m.nextID++
	return m.nextID
}

// tick 생성 순서가 시각에 반영되도록 1초씩 증가
func (m *memDB) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

// ── Mock JobSeekerRepository ──

type mockJobSeekerRepo struct{ m *memDB }

func (r *mockJobSeekerRepo) Create(_ context.Context, js *model.JobSeeker) error {
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.seekers[js.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	for _, s := range r.m.seekers {
		if s.Email == js.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	js.CreatedAt = r.m.tick()
	r.m.seekers[js.ID] = js
	return nil
}

func (r *mockJobSeekerRepo) GetByID(_ context.Context, id string) (*model.JobSeeker, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	if js, ok := r.m.seekers[id]; ok {
		return js, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockJobSeekerRepo) ExistsByIDOrEmail(_ context.Context, id, email string) (bool, error) {
	if r.m.err != nil {
		return false, r.m.err
	}
	for _, s := range r.m.seekers {
		if s.ID == id || s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock EmployerRepository ──

type mockEmployerRepo struct{ m *memDB }

func (r *mockEmployerRepo) Create(_ context.Context, e *model.Employer) error {
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.employers[e.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	e.CreatedAt = r.m.tick()
	r.m.employers[e.ID] = e
	return nil
}

func (r *mockEmployerRepo) GetByID(_ context.Context, id string) (*model.Employer, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	if e, ok := r.m.employers[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockEmployerRepo) Exists(_ context.Context, id string) (bool, error) {
	if r.m.err != nil {
		return false, r.m.err
	}
	_, ok := r.m.employers[id]
	return ok, nil
}

func (r *mockEmployerRepo) UpdateContact(_ context.Context, id, phoneNumber, email string) error {
	if r.m.err != nil {
		return r.m.err
	}
	if e, ok := r.m.employers[id]; ok {
		e.PhoneNumber = phoneNumber
		e.Email = email
	}
	return nil
}

func (r *mockEmployerRepo) DeleteCascade(_ context.Context, id string) (int64, error) {
	if r.m.err != nil {
		return 0, r.m.err
	}
	if _, ok := r.m.employers[id]; !ok {
		return 0, gorm.ErrRecordNotFound
	}
	var n int64
	for pid, p := range r.m.postings {
		if p.EmployerID == id {
			delete(r.m.postings, pid)
			n++
		}
	}
	delete(r.m.employers, id)
	return n, nil
}

func (r *mockEmployerRepo) ListDepartments(_ context.Context) ([]string, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	seen := map[string]bool{}
	var names []string
	for _, e := range r.m.employers {
		if !seen[e.DepartmentName] {
			seen[e.DepartmentName] = true
			names = append(names, e.DepartmentName)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ── Mock PostingRepository ──

type mockPostingRepo struct{ m *memDB }

func (r *mockPostingRepo) Create(_ context.Context, p *model.Posting) error {
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.employers[p.EmployerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	p.ID = r.m.id()
	p.CreatedAt = r.m.tick()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.m.postings[p.ID] = &cp
	return nil
}

func (r *mockPostingRepo) GetByID(_ context.Context, id uint64) (*model.Posting, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	if p, ok := r.m.postings[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockPostingRepo) Update(_ context.Context, p *model.Posting) error {
	if r.m.err != nil {
		return r.m.err
	}
	p.UpdatedAt = r.m.tick()
	cp := *p
	r.m.postings[p.ID] = &cp
	return nil
}

func (r *mockPostingRepo) Delete(_ context.Context, id uint64) (int64, error) {
	if r.m.err != nil {
		return 0, r.m.err
	}
	if _, ok := r.m.postings[id]; !ok {
		return 0, nil
	}
	delete(r.m.postings, id)
	return 1, nil
}

func (r *mockPostingRepo) ListByEmployer(_ context.Context, employerID string, f repository.PostingFilter) ([]model.Posting, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	var out []model.Posting
	for _, p := range r.m.postings {
		if p.EmployerID == employerID && p.StatusOn(f.Today) == f.Status {
			out = append(out, *p)
		}
	}
	if f.Status == model.StatusClosed {
		sort.Slice(out, func(i, j int) bool {
			if !out[i].RecruitmentDeadline.Equal(out[j].RecruitmentDeadline) {
				return out[i].RecruitmentDeadline.After(out[j].RecruitmentDeadline)
			}
			return out[i].ID > out[j].ID
		})
	} else {
		sortNewestFirst(out)
	}
	return out, nil
}

func (r *mockPostingRepo) List(_ context.Context, f repository.PostingFilter) ([]model.Posting, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	var out []model.Posting
	for _, p := range r.m.postings {
		e, ok := r.m.employers[p.EmployerID]
		if !ok || p.StatusOn(f.Today) != f.Status {
			continue
		}
		if len(f.Departments) > 0 && !containsString(f.Departments, e.DepartmentName) {
			continue
		}
		out = append(out, *p)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(ps []model.Posting) {
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.After(ps[j].CreatedAt)
		}
		return ps[i].ID > ps[j].ID
	})
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ── Mock NormalInfoRepository ──

type mockNormalInfoRepo struct{ m *memDB }

func (r *mockNormalInfoRepo) Get(_ context.Context, jobSeekerID string) (*model.NormalInformation, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	if info, ok := r.m.normal[jobSeekerID]; ok {
		cp := *info
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockNormalInfoRepo) Upsert(_ context.Context, info *model.NormalInformation, withImage bool) error {
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.seekers[info.JobSeekerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	cp := *info
	if old, ok := r.m.normal[info.JobSeekerID]; ok && !withImage {
		cp.Image = old.Image
	}
	r.m.normal[info.JobSeekerID] = &cp
	return nil
}

// ── Mock GradeInfoRepository ──

type mockGradeInfoRepo struct{ m *memDB }

func (r *mockGradeInfoRepo) Get(_ context.Context, jobSeekerID string) (*model.GradeInformation, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	if info, ok := r.m.grade[jobSeekerID]; ok {
		return info, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockGradeInfoRepo) Upsert(_ context.Context, info *model.GradeInformation) error {
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.seekers[info.JobSeekerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	r.m.grade[info.JobSeekerID] = info
	return nil
}

func (r *mockGradeInfoRepo) Delete(_ context.Context, jobSeekerID string) (int64, error) {
	if r.m.err != nil {
		return 0, r.m.err
	}
	if _, ok := r.m.grade[jobSeekerID]; !ok {
		return 0, nil
	}
	delete(r.m.grade, jobSeekerID)
	return 1, nil
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct{ m *memDB }

func (r *mockActivityRepo) ListByJobSeeker(_ context.Context, jobSeekerID string) ([]model.ExperienceActivity, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	var out []model.ExperienceActivity
	for _, a := range r.m.activities {
		if a.JobSeekerID == jobSeekerID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate > out[j].StartDate
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *mockActivityRepo) GetByID(_ context.Context, id uint64) (*model.ExperienceActivity, error) {
	if r.m.err != nil {
		return nil, r.m.err
	}
	if a, ok := r.m.activities[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockActivityRepo) Create(_ context.Context, a *model.ExperienceActivity) error {
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.seekers[a.JobSeekerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	a.ID = r.m.id()
	cp := *a
	r.m.activities[a.ID] = &cp
	return nil
}

func (r *mockActivityRepo) Update(_ context.Context, a *model.ExperienceActivity) error {
	if r.m.err != nil {
		return r.m.err
	}
	cp := *a
	r.m.activities[a.ID] = &cp
	return nil
}

func (r *mockActivityRepo) Delete(_ context.Context, id uint64) (int64, error) {
	if r.m.err != nil {
		return 0, r.m.err
	}
	if _, ok := r.m.activities[id]; !ok {
		return 0, nil
	}
	delete(r.m.activities, id)
	return 1, nil
}

// ── Mock Publisher ──

type published struct {
	subject string
	event   events.PostingEvent
}

type mockPublisher struct {
	sent []published
	err  error
}

func (p *mockPublisher) Publish(_ context.Context, subject string, ev events.PostingEvent) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{subject: subject, event: ev})
	return nil
}

func (p *mockPublisher) Close() {}

// ── Mock ImageStore ──

type mockImageStore struct {
	saved   []string
	removed []string
	err     error
}

func (s *mockImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name := "stored-" + fh.Filename
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *mockImageStore) Remove(name string) error {
	s.removed = append(s.removed, name)
	return nil
}

var _ ImageStore = (*storage.ImageStore)(nil)
