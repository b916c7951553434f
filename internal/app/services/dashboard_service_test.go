package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	byID     map[int64]*models.User
	byName   map[string]*models.User
	byRole   map[models.RoleType][]models.User
	queryErr error
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetAllByRole(_ context.Context, role models.RoleType) ([]models.User, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.byRole[role], nil
}

func (f *fakeUserRepo) UpsertByUsername(_ context.Context, user *models.User) (int64, error) {
	return user.ID, nil
}

type fakeAcademicRepo struct {
	record      *models.AcademicRecord
	fees        []models.FeeRecord
	loans       []models.LibraryLoan
	performance []models.PerformanceSample
	attendance  []models.AttendanceSample
}

func (f *fakeAcademicRepo) GetAcademicRecord(_ context.Context, studentID int64) (*models.AcademicRecord, error) {
	if f.record == nil {
		return nil, apperrors.NewMissingRecordError("no academic record")
	}
	return f.record, nil
}

func (f *fakeAcademicRepo) ListFees(_ context.Context, _ int64) ([]models.FeeRecord, error) {
	return f.fees, nil
}

func (f *fakeAcademicRepo) ListLoans(_ context.Context, _ int64) ([]models.LibraryLoan, error) {
	return f.loans, nil
}

func (f *fakeAcademicRepo) ListPerformance(_ context.Context, _ int64) ([]models.PerformanceSample, error) {
	return f.performance, nil
}

func (f *fakeAcademicRepo) ListAttendance(_ context.Context, _ int64) ([]models.AttendanceSample, error) {
	return f.attendance, nil
}

type fakeCourseworkRepo struct {
	exams       []models.ExamRecord
	assignments []models.AssignmentRecord
}

func (f *fakeCourseworkRepo) ListExams(_ context.Context) ([]models.ExamRecord, error) {
	return f.exams, nil
}

func (f *fakeCourseworkRepo) ListAssignments(_ context.Context) ([]models.AssignmentRecord, error) {
	return f.assignments, nil
}

func intPtr(i int) *int { return &i }

func gradedExams(marks ...int) []models.ExamRecord {
	exams := make([]models.ExamRecord, 0, len(marks))
	for _, m := range marks {
		exams = append(exams, models.ExamRecord{Marks: intPtr(m)})
	}
	return exams
}

func TestBucketMarksIsExhaustiveAndExclusive(t *testing.T) {
	for m := 0; m <= 100; m++ {
		dist := bucketMarks(gradedExams(m))
		total := dist.A + dist.B + dist.C + dist.D + dist.F
		assert.Equal(t, 1, total, "marks %d must land in exactly one bucket", m)
	}
}

func TestBucketMarksBoundaries(t *testing.T) {
	tests := []struct {
		marks int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		dist := bucketMarks(gradedExams(tt.marks))
		got := map[string]int{"A": dist.A, "B": dist.B, "C": dist.C, "D": dist.D, "F": dist.F}
		assert.Equal(t, 1, got[tt.want], "marks %d should be bucket %s", tt.marks, tt.want)
	}
}

func TestBucketMarksSeededDistribution(t *testing.T) {
	dist := bucketMarks(gradedExams(95, 82, 71, 65, 40))

	assert.Equal(t, 1, dist.A)
	assert.Equal(t, 1, dist.B)
	assert.Equal(t, 1, dist.C)
	assert.Equal(t, 1, dist.D)
	assert.Equal(t, 1, dist.F)
}

func TestBucketMarksIgnoresUngraded(t *testing.T) {
	exams := []models.ExamRecord{
		{Marks: intPtr(91)},
		{Marks: nil},
		{Marks: nil},
	}
	dist := bucketMarks(exams)

	assert.Equal(t, 1, dist.A)
	assert.Equal(t, 0, dist.B+dist.C+dist.D+dist.F)
}

func TestAssignmentTrendSortedDistinctWithZeroCounts(t *testing.T) {
	assignments := []models.AssignmentRecord{
		{DueDate: "2025-09-18", Submitted: true},
		{DueDate: "2025-09-10", Submitted: true},
		{DueDate: "2025-09-18", Submitted: false},
		{DueDate: "2025-10-01", Submitted: false},
		{DueDate: "2025-09-18", Submitted: true},
	}

	dates, counts := assignmentTrend(assignments)

	assert.Equal(t, []string{"2025-09-10", "2025-09-18", "2025-10-01"}, dates)
	assert.Equal(t, []int{1, 2, 0}, counts)
}

func TestAssignmentTrendEmpty(t *testing.T) {
	dates, counts := assignmentTrend(nil)

	assert.Empty(t, dates)
	assert.Empty(t, counts)
}

func TestBuildFacultyDashboardEmptyRecordSets(t *testing.T) {
	d := buildFacultyDashboard("prof", 0, nil, nil, "2025-09-01")

	assert.Equal(t, 0, d.UpcomingExams)
	assert.Equal(t, 0, d.PendingAssignments)
	assert.Equal(t, 0, d.MarksUploaded)
	assert.Equal(t, 0, d.Marks.A+d.Marks.B+d.Marks.C+d.Marks.D+d.Marks.F)
	assert.NotNil(t, d.Exams)
	assert.NotNil(t, d.Assignments)
}

func TestBuildFacultyDashboardCounts(t *testing.T) {
	exams := []models.ExamRecord{
		{Subject: "Math", Date: "2025-08-20", Marks: intPtr(95)},
		{Subject: "Physics", Date: "2025-09-01", Marks: intPtr(82)},
		{Subject: "Chemistry", Date: "2025-09-15", Marks: nil},
	}
	assignments := []models.AssignmentRecord{
		{Title: "a", DueDate: "2025-09-10", Submitted: true},
		{Title: "b", DueDate: "2025-09-10", Submitted: false},
		{Title: "c", DueDate: "2025-09-20", Submitted: false},
	}

	d := buildFacultyDashboard("prof", 12, exams, assignments, "2025-09-01")

	assert.Equal(t, "prof", d.FacultyName)
	assert.Equal(t, 12, d.TotalStudents)
	// Date comparison is lexicographic over ISO strings; the boundary
	// date counts as upcoming.
	assert.Equal(t, 2, d.UpcomingExams)
	assert.Equal(t, 2, d.PendingAssignments)
	assert.Equal(t, 2, d.MarksUploaded)
}

func TestFacultyDashboardViaService(t *testing.T) {
	users := &fakeUserRepo{
		byID: map[int64]*models.User{
			7: {ID: 7, Username: "vidyarth_faculty", Role: models.RoleFaculty},
		},
		byRole: map[models.RoleType][]models.User{
			models.RoleStudent: {
				{ID: 1, Username: "s1", Role: models.RoleStudent},
				{ID: 2, Username: "s2", Role: models.RoleStudent},
			},
		},
	}
	coursework := &fakeCourseworkRepo{
		exams: gradedExams(95, 82, 71, 65, 40),
	}

	svc := NewDashboardService(users, &fakeAcademicRepo{}, coursework, zerolog.Nop()).(*dashboardService)
	svc.today = func() string { return "2025-09-01" }

	d, err := svc.FacultyDashboard(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "vidyarth_faculty", d.FacultyName)
	assert.Equal(t, 2, d.TotalStudents)
	assert.Equal(t, 1, d.Marks.A)
	assert.Equal(t, 1, d.Marks.B)
	assert.Equal(t, 1, d.Marks.C)
	assert.Equal(t, 1, d.Marks.D)
	assert.Equal(t, 1, d.Marks.F)
	assert.Equal(t, 5, d.MarksUploaded)
}

func TestStudentDashboardEchoesAcademicRecord(t *testing.T) {
	users := &fakeUserRepo{
		byID: map[int64]*models.User{
			1: {ID: 1, Username: "vidyarth_student", Role: models.RoleStudent},
		},
	}
	academic := &fakeAcademicRepo{
		record: &models.AcademicRecord{
			StudentID:   1,
			GPA:         8.5,
			Attendance:  95,
			PendingFees: 1200,
			BooksIssued: 3,
		},
		fees: []models.FeeRecord{
			{StudentID: 1, Type: "Tuition Fee", Amount: 5000, DueDate: "2025-10-10"},
		},
		performance: []models.PerformanceSample{
			{StudentID: 1, Date: "2025-07", GPA: 8.0},
			{StudentID: 1, Date: "2025-08", GPA: 8.3},
			{StudentID: 1, Date: "2025-09", GPA: 8.5},
		},
		attendance: []models.AttendanceSample{
			{StudentID: 1, Date: "2025-07", Percentage: 90},
			{StudentID: 1, Date: "2025-08", Percentage: 92},
			{StudentID: 1, Date: "2025-09", Percentage: 95},
		},
	}

	svc := NewDashboardService(users, academic, &fakeCourseworkRepo{}, zerolog.Nop())

	d, err := svc.StudentDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "vidyarth_student", d.StudentName)
	assert.Equal(t, 8.5, d.GPA)
	assert.Equal(t, 95.0, d.AttendancePercent)
	assert.Equal(t, 1200.0, d.PendingFees)
	assert.Equal(t, 3, d.BooksIssued)
	assert.Len(t, d.Fees, 1)
	assert.NotNil(t, d.LibraryLoans)
	assert.Equal(t, []string{"2025-07", "2025-08", "2025-09"}, d.PerformanceDates)
	assert.Equal(t, []float64{8.0, 8.3, 8.5}, d.GPAOverTime)
	assert.Equal(t, []string{"2025-07", "2025-08", "2025-09"}, d.AttendanceDates)
	assert.Equal(t, []float64{90, 92, 95}, d.AttendanceOverTime)
}

func TestStudentDashboardMissingRecordFailsLoudly(t *testing.T) {
	users := &fakeUserRepo{
		byID: map[int64]*models.User{
			1: {ID: 1, Username: "vidyarth_student", Role: models.RoleStudent},
		},
	}

	svc := NewDashboardService(users, &fakeAcademicRepo{}, &fakeCourseworkRepo{}, zerolog.Nop())

	d, err := svc.StudentDashboard(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingRecord)
	assert.Nil(t, d)
}

func TestAdminDashboardPartitionsByRole(t *testing.T) {
	users := &fakeUserRepo{
		byRole: map[models.RoleType][]models.User{
			models.RoleStudent: {
				{ID: 1, Username: "s1", Role: models.RoleStudent},
				{ID: 2, Username: "s2", Role: models.RoleStudent},
			},
			models.RoleFaculty: {
				{ID: 3, Username: "f1", Role: models.RoleFaculty},
			},
		},
	}

	svc := NewDashboardService(users, &fakeAcademicRepo{}, &fakeCourseworkRepo{}, zerolog.Nop())

	d, err := svc.AdminDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, d.Students, 2)
	require.Len(t, d.Faculty, 1)
	assert.Equal(t, "s1", d.Students[0].Username)
	assert.Equal(t, "f1", d.Faculty[0].Username)
	assert.Equal(t, "faculty", d.Faculty[0].Role)
}
