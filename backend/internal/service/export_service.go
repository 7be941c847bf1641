package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/clock"
)

// ── 내보내기 모듈 업무 오류 ──

var (
	ErrExportNoPostings   = errors.New("내보낼 구인 공고가 없습니다.")
	ErrExportGenerateFail = errors.New("파일 생성에 실패했습니다.")
)

// ExportService 공고 내보내기
//   - 구인자 공고 목록 → Excel (.xlsx)
//   - 공고 마감일 → iCalendar (.ics), 공고마다 종일 일정 하나
type ExportService interface {
	ExportPostings(ctx context.Context, employerID, status string) (*bytes.Buffer, string, error)
	DeadlineCalendar(ctx context.Context, q *dto.PostingListQuery) (*bytes.Buffer, error)
}

type exportService struct {
	repo   *repository.Repository
	clock  clock.Clock
	logger *zap.Logger
}

// NewExportService ExportService 생성
func NewExportService(repo *repository.Repository, clk clock.Clock, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, clock: clk, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPostings 구인자 공고 목록 Excel
// ═══════════════════════════════════════════════════════════
//
// status 가 비어 있으면 진행 중과 마감 공고를 모두 담는다 (진행 중 먼저)

var postingSheetHeader = []string{
	"번호", "제목", "회사명", "근무지", "자격 구분", "근무 시작", "근무 종료",
	"모집 마감", "시급", "지원 방법", "연락처", "상태", "등록일",
}

func (s *exportService) ExportPostings(ctx context.Context, employerID, status string) (*bytes.Buffer, string, error) {
	statuses := []string{model.StatusActive, model.StatusClosed}
	if status != "" {
		if !model.ValidStatus(status) {
			return nil, "", ErrInvalidStatus
		}
		statuses = []string{status}
	}

	today := clock.Today(s.clock)
	var postings []model.Posting
	for _, st := range statuses {
		list, err := s.repo.Posting.ListByEmployer(ctx, employerID, repository.PostingFilter{Status: st, Today: today})
		if err != nil {
			s.logger.Error("내보낼 공고 조회 실패", zap.String("employer_id", employerID), zap.Error(err))
			return nil, "", err
		}
		postings = append(postings, list...)
	}
	if len(postings) == 0 {
		return nil, "", ErrExportNoPostings
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "구인공고"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "D", 24)
	f.SetColWidth(sheetName, "E", "M", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range postingSheetHeader {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(postingSheetHeader)-1), 1), headerStyle)

	statusNames := map[string]string{model.StatusActive: "모집중", model.StatusClosed: "마감"}
	for i := range postings {
		p := &postings[i]
		row := i + 2
		values := []interface{}{
			p.ID, p.Title, p.CompanyName, p.Location, p.QualificationType,
			model.FormatDate(p.WorkPeriodStart), model.FormatDate(p.WorkPeriodEnd),
			model.FormatDate(p.RecruitmentDeadline), p.HourlyWage,
			p.ApplicationMethod, p.ContactNumber, statusNames[p.StatusOn(today)],
			p.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			f.SetCellValue(sheetName, cell(colName(col), row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("구인공고_%s_%s.xlsx", employerID, today)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// DeadlineCalendar 공고 마감일 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) DeadlineCalendar(ctx context.Context, q *dto.PostingListQuery) (*bytes.Buffer, error) {
	status := q.Status
	if status == "" {
		status = model.StatusActive
	}
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	today := clock.Today(s.clock)
	postings, err := s.repo.Posting.List(ctx, repository.PostingFilter{
		Status:      status,
		Today:       today,
		Departments: SplitDepartments(q.Departments),
	})
	if err != nil {
		s.logger.Error("마감 일정 공고 조회 실패", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Yeonsung Job Board//Recruitment Deadlines//KO")
	cal.SetXWRCalName("연성대 교내 구인 마감일")

	stamp := s.clock.Now()
	for i := range postings {
		p := &postings[i]
		ev := cal.AddEvent(fmt.Sprintf("posting-%d@ysu-job", p.ID))
		ev.SetDtStampTime(stamp)
		ev.SetCreatedTime(p.CreatedAt)
		ev.SetModifiedAt(p.UpdatedAt)
		ev.SetAllDayStartAt(p.RecruitmentDeadline)
		ev.SetAllDayEndAt(p.RecruitmentDeadline.AddDate(0, 0, 1))
		ev.SetSummary(fmt.Sprintf("[마감] %s", p.Title))
		ev.SetLocation(p.Location)
		ev.SetDescription(fmt.Sprintf("%s / 시급 %d원 / 지원: %s / 연락처: %s",
			p.CompanyName, p.HourlyWage, p.ApplicationMethod, p.ContactNumber))
	}

	buf := new(bytes.Buffer)
	if err := cal.SerializeTo(buf); err != nil {
		s.logger.Error("iCalendar 쓰기 실패", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

// ── 보조 함수 ──

// colName 0 부터 시작하는 열 번호 → A, B, ...
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
