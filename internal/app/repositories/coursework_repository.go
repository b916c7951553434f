package repositories

import (
	"context"
	"fmt"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/apperrors"
)

// CourseworkRepository handles exam and assignment rows. The faculty
// dashboard reads them school-wide, so list queries are unscoped.
type CourseworkRepository struct {
	db Querier
}

// NewCourseworkRepository creates a new CourseworkRepository
func NewCourseworkRepository(db Querier) *CourseworkRepository {
	return &CourseworkRepository{
		db: db,
	}
}

// ListExams retrieves all exam records in insertion order.
func (r *CourseworkRepository) ListExams(ctx context.Context) ([]models.ExamRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, subject, date, marks
		FROM exam_records
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying exam records: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var exams []models.ExamRecord
	for rows.Next() {
		var exam models.ExamRecord
		if err := rows.Scan(&exam.ID, &exam.StudentID, &exam.Subject, &exam.Date, &exam.Marks); err != nil {
			return nil, fmt.Errorf("error scanning exam row: %w", err)
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading exam rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return exams, nil
}

// ListAssignments retrieves all assignment records in insertion order.
func (r *CourseworkRepository) ListAssignments(ctx context.Context) ([]models.AssignmentRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, title, due_date, submitted
		FROM assignment_records
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying assignment records: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var assignments []models.AssignmentRecord
	for rows.Next() {
		var assignment models.AssignmentRecord
		if err := rows.Scan(&assignment.ID, &assignment.StudentID, &assignment.Title, &assignment.DueDate, &assignment.Submitted); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading assignment rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return assignments, nil
}

// CreateExam inserts an exam record.
func (r *CourseworkRepository) CreateExam(ctx context.Context, exam *models.ExamRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO exam_records (student_id, subject, date, marks)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		exam.StudentID, exam.Subject, exam.Date, exam.Marks).Scan(&exam.ID)

	if err != nil {
		return fmt.Errorf("error creating exam record: %w", err)
	}

	return nil
}

// CreateAssignment inserts an assignment record.
func (r *CourseworkRepository) CreateAssignment(ctx context.Context, assignment *models.AssignmentRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO assignment_records (student_id, title, due_date, submitted)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		assignment.StudentID, assignment.Title, assignment.DueDate, assignment.Submitted).Scan(&assignment.ID)

	if err != nil {
		return fmt.Errorf("error creating assignment record: %w", err)
	}

	return nil
}
