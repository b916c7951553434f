package dto

import (
	"github.com/vidyarth/vidyarth-backend/internal/app/models"
)

// StudentDashboard is the view-model for the student dashboard. The
// headline figures echo the academic record verbatim; fee and loan sets
// are unfiltered in insertion order; the two time series are parallel
// date/value slices in the order the store produced them.
type StudentDashboard struct {
	StudentName       string  `json:"studentName"`
	GPA               float64 `json:"gpa"`
	AttendancePercent float64 `json:"attendancePercent"`
	PendingFees       float64 `json:"pendingFees"`
	BooksIssued       int     `json:"booksIssued"`

	Fees         []models.FeeRecord   `json:"fees"`
	LibraryLoans []models.LibraryLoan `json:"libraryBooks"`

	PerformanceDates   []string  `json:"performanceDates"`
	GPAOverTime        []float64 `json:"gpaOverTime"`
	AttendanceDates    []string  `json:"attendanceDates"`
	AttendanceOverTime []float64 `json:"attendanceOverTime"`
}

// MarksDistribution buckets exam marks into letter grades. The buckets
// are mutually exclusive and exhaustive over [0,100]: A [90,100],
// B [80,90), C [70,80), D [60,70), F [0,60). Unset marks fall in none.
type MarksDistribution struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
	D int `json:"d"`
	F int `json:"f"`
}

// FacultyDashboard is the view-model for the faculty dashboard.
// AssignmentDates and AssignmentSubmitted are parallel: distinct due
// dates ascending, each paired with the count of submitted assignments
// on that date (zero-count dates included).
type FacultyDashboard struct {
	FacultyName        string `json:"facultyName"`
	TotalStudents      int    `json:"totalStudents"`
	UpcomingExams      int    `json:"upcomingExams"`
	PendingAssignments int    `json:"pendingAssignments"`
	MarksUploaded      int    `json:"marksUploaded"`

	Marks MarksDistribution `json:"marksDistribution"`

	AssignmentDates     []string `json:"assignmentDates"`
	AssignmentSubmitted []int    `json:"assignmentSubmitted"`

	Exams       []models.ExamRecord       `json:"exams"`
	Assignments []models.AssignmentRecord `json:"assignments"`
}

// IdentitySummary is a user as listed on the admin dashboard.
type IdentitySummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AdminDashboard partitions all identities by role.
type AdminDashboard struct {
	Students []IdentitySummary `json:"students"`
	Faculty  []IdentitySummary `json:"faculty"`
}
