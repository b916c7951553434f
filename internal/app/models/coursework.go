package models

// ExamRecord is an exam entry for a student ('exam_records' table).
// Marks is nil until the faculty uploads a result; a set value is
// always within [0,100].
type ExamRecord struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"studentId" db:"student_id"`
	Subject   string `json:"subject" db:"subject"`
	Date      string `json:"date" db:"date"`
	Marks     *int   `json:"marks" db:"marks"`
}

// AssignmentRecord is an assignment entry for a student
// ('assignment_records' table).
type AssignmentRecord struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"studentId" db:"student_id"`
	Title     string `json:"title" db:"title"`
	DueDate   string `json:"dueDate" db:"due_date"`
	Submitted bool   `json:"submitted" db:"submitted"`
}
