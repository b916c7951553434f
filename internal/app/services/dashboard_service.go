package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/app/models/dto"
	"github.com/vidyarth/vidyarth-backend/internal/app/repositories"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/helpers"
)

// DashboardService produces the per-role view-models. Each method only
// reads; aggregation happens in memory over the fetched record sets.
type DashboardService interface {
	StudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error)
	FacultyDashboard(ctx context.Context, facultyID int64) (*dto.FacultyDashboard, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboard, error)
}

type dashboardService struct {
	users      repositories.IUserRepository
	academic   repositories.IAcademicRepository
	coursework repositories.ICourseworkRepository
	logger     zerolog.Logger

	// today is swappable so aggregation over date strings is testable.
	today func() string
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	users repositories.IUserRepository,
	academic repositories.IAcademicRepository,
	coursework repositories.ICourseworkRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		users:      users,
		academic:   academic,
		coursework: coursework,
		logger:     logger,
		today:      helpers.TodayISO,
	}
}

// StudentDashboard assembles the student view-model. The academic
// record fields are echoed verbatim; a student without one fails hard
// instead of rendering a zero-filled dashboard.
func (s *dashboardService) StudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error) {
	user, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	record, err := s.academic.GetAcademicRecord(ctx, studentID)
	if err != nil {
		return nil, err
	}

	fees, err := s.academic.ListFees(ctx, studentID)
	if err != nil {
		return nil, err
	}

	loans, err := s.academic.ListLoans(ctx, studentID)
	if err != nil {
		return nil, err
	}

	performance, err := s.academic.ListPerformance(ctx, studentID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.academic.ListAttendance(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return buildStudentDashboard(user, record, fees, loans, performance, attendance), nil
}

// FacultyDashboard assembles the faculty view-model over all exam and
// assignment records.
func (s *dashboardService) FacultyDashboard(ctx context.Context, facultyID int64) (*dto.FacultyDashboard, error) {
	user, err := s.users.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	students, err := s.users.GetAllByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	exams, err := s.coursework.ListExams(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.coursework.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	return buildFacultyDashboard(user.Username, len(students), exams, assignments, s.today()), nil
}

// AdminDashboard partitions all identities by role.
func (s *dashboardService) AdminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	students, err := s.users.GetAllByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	faculty, err := s.users.GetAllByRole(ctx, models.RoleFaculty)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		Students: summarizeUsers(students),
		Faculty:  summarizeUsers(faculty),
	}, nil
}

func buildStudentDashboard(
	user *models.User,
	record *models.AcademicRecord,
	fees []models.FeeRecord,
	loans []models.LibraryLoan,
	performance []models.PerformanceSample,
	attendance []models.AttendanceSample,
) *dto.StudentDashboard {
	d := &dto.StudentDashboard{
		StudentName:        user.Username,
		GPA:                record.GPA,
		AttendancePercent:  record.Attendance,
		PendingFees:        record.PendingFees,
		BooksIssued:        record.BooksIssued,
		Fees:               fees,
		LibraryLoans:       loans,
		PerformanceDates:   make([]string, 0, len(performance)),
		GPAOverTime:        make([]float64, 0, len(performance)),
		AttendanceDates:    make([]string, 0, len(attendance)),
		AttendanceOverTime: make([]float64, 0, len(attendance)),
	}
	if d.Fees == nil {
		d.Fees = []models.FeeRecord{}
	}
	if d.LibraryLoans == nil {
		d.LibraryLoans = []models.LibraryLoan{}
	}

	// Keep the series in collaborator order; callers chart them as-is.
	for _, p := range performance {
		d.PerformanceDates = append(d.PerformanceDates, p.Date)
		d.GPAOverTime = append(d.GPAOverTime, p.GPA)
	}
	for _, a := range attendance {
		d.AttendanceDates = append(d.AttendanceDates, a.Date)
		d.AttendanceOverTime = append(d.AttendanceOverTime, a.Percentage)
	}

	return d
}

func buildFacultyDashboard(
	facultyName string,
	totalStudents int,
	exams []models.ExamRecord,
	assignments []models.AssignmentRecord,
	today string,
) *dto.FacultyDashboard {
	d := &dto.FacultyDashboard{
		FacultyName:   facultyName,
		TotalStudents: totalStudents,
		Marks:         bucketMarks(exams),
		Exams:         exams,
		Assignments:   assignments,
	}
	if d.Exams == nil {
		d.Exams = []models.ExamRecord{}
	}
	if d.Assignments == nil {
		d.Assignments = []models.AssignmentRecord{}
	}

	for _, e := range exams {
		// ISO date strings compare lexicographically in date order.
		if e.Date >= today {
			d.UpcomingExams++
		}
		if e.Marks != nil {
			d.MarksUploaded++
		}
	}

	for _, a := range assignments {
		if !a.Submitted {
			d.PendingAssignments++
		}
	}

	d.AssignmentDates, d.AssignmentSubmitted = assignmentTrend(assignments)

	return d
}

// bucketMarks groups graded exams into letter buckets. Boundaries
// belong to the higher letter: 90 is A, 80 is B, 70 is C, 60 is D.
// Ungraded exams count in no bucket.
func bucketMarks(exams []models.ExamRecord) dto.MarksDistribution {
	var dist dto.MarksDistribution
	for _, e := range exams {
		if e.Marks == nil {
			continue
		}
		switch m := *e.Marks; {
		case m >= 90:
			dist.A++
		case m >= 80:
			dist.B++
		case m >= 70:
			dist.C++
		case m >= 60:
			dist.D++
		default:
			dist.F++
		}
	}
	return dist
}

// assignmentTrend returns the distinct due dates ascending, each paired
// with the count of submitted assignments on that date. Dates where
// nothing was submitted still appear with count 0.
func assignmentTrend(assignments []models.AssignmentRecord) ([]string, []int) {
	submittedByDate := make(map[string]int)
	for _, a := range assignments {
		if _, ok := submittedByDate[a.DueDate]; !ok {
			submittedByDate[a.DueDate] = 0
		}
		if a.Submitted {
			submittedByDate[a.DueDate]++
		}
	}

	dates := make([]string, 0, len(submittedByDate))
	for date := range submittedByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	counts := make([]int, len(dates))
	for i, date := range dates {
		counts[i] = submittedByDate[date]
	}

	return dates, counts
}

func summarizeUsers(users []models.User) []dto.IdentitySummary {
	summaries := make([]dto.IdentitySummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, dto.IdentitySummary{
			ID:       u.ID,
			Username: u.Username,
			Role:     string(u.Role),
		})
	}
	return summaries
}
