package models

// Dates in the record tables are stored as ISO strings ("2006-01-02" or
// "2006-01" for monthly samples) so lexicographic order matches
// chronological order. Comparisons must stay consistent with that format.

// AcademicRecord holds the headline academic figures for one student,
// based on the 'academic_records' table. Exactly one row per student.
type AcademicRecord struct {
	ID          int64   `json:"id" db:"id"`
	StudentID   int64   `json:"studentId" db:"student_id"`
	GPA         float64 `json:"gpa" db:"gpa"`
	Attendance  float64 `json:"attendance" db:"attendance"` // percentage in [0,100]
	PendingFees float64 `json:"pendingFees" db:"pending_fees"`
	BooksIssued int     `json:"booksIssued" db:"books_issued"`
}

// FeeRecord is a single fee item for a student ('fee_records' table).
type FeeRecord struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	Type      string  `json:"type" db:"type"`
	Amount    float64 `json:"amount" db:"amount"` // never negative
	Paid      bool    `json:"paid" db:"paid"`
	DueDate   string  `json:"dueDate" db:"due_date"`
}

// LibraryLoan is a book issued to a student ('library_loans' table).
type LibraryLoan struct {
	ID         int64  `json:"id" db:"id"`
	StudentID  int64  `json:"studentId" db:"student_id"`
	Title      string `json:"title" db:"title"`
	IssuedDate string `json:"issuedDate" db:"issued_date"` // never after DueDate
	DueDate    string `json:"dueDate" db:"due_date"`
	Returned   bool   `json:"returned" db:"returned"`
}

// PerformanceSample is one point of the append-only GPA time series.
type PerformanceSample struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	Date      string  `json:"date" db:"date"`
	GPA       float64 `json:"gpa" db:"gpa"`
}

// AttendanceSample is one point of the attendance time series.
type AttendanceSample struct {
	ID         int64   `json:"id" db:"id"`
	StudentID  int64   `json:"studentId" db:"student_id"`
	Date       string  `json:"date" db:"date"`
	Percentage float64 `json:"percentage" db:"percentage"` // in [0,100]
}
