// Package seed populates the default identities and sample records.
// Seeding is idempotent: identities are upserted by username and sample
// rows are only created when the student has none, so repeated runs
// never duplicate data.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/vidyarth/vidyarth-backend/internal/app/models"
	appRepos "github.com/vidyarth/vidyarth-backend/internal/app/repositories"
	"github.com/vidyarth/vidyarth-backend/internal/db"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/auth"
)

type defaultUser struct {
	username string
	password string
	role     appModels.RoleType
}

var defaultUsers = []defaultUser{
	{username: "vidyarth_student", password: "student123", role: appModels.RoleStudent},
	{username: "vidyarth_faculty", password: "faculty123", role: appModels.RoleFaculty},
	{username: "vidyarth_admin", password: "admin123", role: appModels.RoleAdmin},
}

// Run creates the default identities and the sample student records.
func Run(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Seeding default users...")

	ids := make(map[appModels.RoleType]int64, len(defaultUsers))
	for _, du := range defaultUsers {
		hashed, err := auth.HashPassword(du.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", du.username, err)
		}

		user := &appModels.User{
			Username: du.username,
			Password: hashed,
			Role:     du.role,
		}
		id, err := repos.Users.UpsertByUsername(ctx, user)
		if err != nil {
			return fmt.Errorf("failed to upsert user %s: %w", du.username, err)
		}
		ids[du.role] = id
		lgr.Info().Str("username", du.username).Str("role", string(du.role)).Int64("id", id).Msg("User seeded")
	}

	studentID := ids[appModels.RoleStudent]
	if err := seedStudentRecords(ctx, dbPool, studentID, lgr); err != nil {
		return err
	}

	lgr.Info().Msg("Seeding finished.")
	return nil
}

// seedStudentRecords creates the sample academic data for the default
// student. The batch runs in one transaction so a failed run leaves no
// half-seeded student behind.
func seedStudentRecords(ctx context.Context, dbPool *pgxpool.Pool, studentID int64, lgr zerolog.Logger) error {
	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewTxRepositories(tx)

		record := &appModels.AcademicRecord{
			StudentID:   studentID,
			GPA:         8.5,
			Attendance:  95,
			PendingFees: 1200,
			BooksIssued: 3,
		}
		if err := repos.Academic.UpsertAcademicRecord(ctx, record); err != nil {
			return err
		}

		fees, err := repos.Academic.ListFees(ctx, studentID)
		if err != nil {
			return err
		}
		if len(fees) == 0 {
			sampleFees := []appModels.FeeRecord{
				{StudentID: studentID, Type: "Tuition Fee", Amount: 5000, Paid: false, DueDate: "2025-10-10"},
				{StudentID: studentID, Type: "Lab Fee", Amount: 1500, Paid: true, DueDate: "2025-09-01"},
			}
			for i := range sampleFees {
				if err := repos.Academic.CreateFee(ctx, &sampleFees[i]); err != nil {
					return err
				}
			}
		}

		loans, err := repos.Academic.ListLoans(ctx, studentID)
		if err != nil {
			return err
		}
		if len(loans) == 0 {
			loan := appModels.LibraryLoan{
				StudentID:  studentID,
				Title:      "Mathematics Fundamentals",
				IssuedDate: "2025-09-05",
				DueDate:    "2025-10-05",
				Returned:   false,
			}
			if err := repos.Academic.CreateLoan(ctx, &loan); err != nil {
				return err
			}
		}

		performance, err := repos.Academic.ListPerformance(ctx, studentID)
		if err != nil {
			return err
		}
		if len(performance) == 0 {
			samples := []appModels.PerformanceSample{
				{StudentID: studentID, Date: "2025-07", GPA: 8.0},
				{StudentID: studentID, Date: "2025-08", GPA: 8.3},
				{StudentID: studentID, Date: "2025-09", GPA: 8.5},
			}
			for i := range samples {
				if err := repos.Academic.CreatePerformanceSample(ctx, &samples[i]); err != nil {
					return err
				}
			}
		}

		attendance, err := repos.Academic.ListAttendance(ctx, studentID)
		if err != nil {
			return err
		}
		if len(attendance) == 0 {
			samples := []appModels.AttendanceSample{
				{StudentID: studentID, Date: "2025-07", Percentage: 90},
				{StudentID: studentID, Date: "2025-08", Percentage: 92},
				{StudentID: studentID, Date: "2025-09", Percentage: 95},
			}
			for i := range samples {
				if err := repos.Academic.CreateAttendanceSample(ctx, &samples[i]); err != nil {
					return err
				}
			}
		}

		exams, err := repos.Coursework.ListExams(ctx)
		if err != nil {
			return err
		}
		if len(exams) == 0 {
			marks := []int{95, 82, 71, 65, 40}
			subjects := []string{"Mathematics", "Physics", "Chemistry", "English", "History"}
			dates := []string{"2025-09-15", "2025-09-20", "2025-09-25", "2025-10-02", "2025-10-08"}
			for i := range subjects {
				m := marks[i]
				exam := appModels.ExamRecord{
					StudentID: studentID,
					Subject:   subjects[i],
					Date:      dates[i],
					Marks:     &m,
				}
				if err := repos.Coursework.CreateExam(ctx, &exam); err != nil {
					return err
				}
			}
			// One ungraded upcoming exam
			pending := appModels.ExamRecord{
				StudentID: studentID,
				Subject:   "Computer Science",
				Date:      "2025-11-20",
			}
			if err := repos.Coursework.CreateExam(ctx, &pending); err != nil {
				return err
			}
		}

		assignments, err := repos.Coursework.ListAssignments(ctx)
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			samples := []appModels.AssignmentRecord{
				{StudentID: studentID, Title: "Algebra Problem Set", DueDate: "2025-09-10", Submitted: true},
				{StudentID: studentID, Title: "Physics Lab Report", DueDate: "2025-09-18", Submitted: true},
				{StudentID: studentID, Title: "Chemistry Worksheet", DueDate: "2025-09-18", Submitted: false},
				{StudentID: studentID, Title: "Essay Draft", DueDate: "2025-10-01", Submitted: false},
			}
			for i := range samples {
				if err := repos.Coursework.CreateAssignment(ctx, &samples[i]); err != nil {
					return err
				}
			}
		}

		lgr.Info().Int64("studentID", studentID).Msg("Sample student records seeded")
		return nil
	})
}
