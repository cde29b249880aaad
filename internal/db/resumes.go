package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-pdf/internal/types"
)

// GetResumeData loads a resume with its experience and education rows ordered
// by position. It returns nil if no resume has the given ID.
func (db *DB) GetResumeData(ctx context.Context, resumeID uuid.UUID) (*types.ResumeData, error) {
	var data types.ResumeData
	var contactBytes []byte
	var summary, additional *string

	err := db.pool.QueryRow(ctx,
		`SELECT name, contact_info, summary, skills, additional_info
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&data.Name, &contactBytes, &summary, &data.Skills, &additional)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	data.Summary = deref(summary)
	data.AdditionalInfo = deref(additional)

	if len(contactBytes) > 0 {
		if err := json.Unmarshal(contactBytes, &data.ContactInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contact info: %w", err)
		}
	}
	if len(data.ContactInfo) == 0 {
		data.ContactInfo = nil
	}
	if len(data.Skills) == 0 {
		data.Skills = nil
	}

	if data.Experience, err = db.listExperience(ctx, resumeID); err != nil {
		return nil, err
	}
	if data.Education, err = db.listEducation(ctx, resumeID); err != nil {
		return nil, err
	}
	return &data, nil
}

func (db *DB) listExperience(ctx context.Context, resumeID uuid.UUID) ([]types.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, company, start_date, end_date, location, description, achievements, position
		 FROM experiences WHERE resume_id = $1
		 ORDER BY position, id`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	var out []types.Experience
	for rows.Next() {
		var e types.Experience
		var endDate, location, description *string
		if err := rows.Scan(&e.Title, &e.Company, &e.StartDate, &endDate, &location,
			&description, &e.Achievements, &e.Position); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.EndDate = deref(endDate)
		e.Location = deref(location)
		e.Description = deref(description)
		if len(e.Achievements) == 0 {
			e.Achievements = nil
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (db *DB) listEducation(ctx context.Context, resumeID uuid.UUID) ([]types.Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT degree, field, institution, graduation_date, position
		 FROM education WHERE resume_id = $1
		 ORDER BY position, id`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var out []types.Education
	for rows.Next() {
		var e types.Education
		var graduated *string
		if err := rows.Scan(&e.Degree, &e.Field, &e.Institution, &graduated, &e.Position); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		e.GraduationDate = deref(graduated)
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateResume stores a resume and its entries in one transaction and returns its ID
func (db *DB) CreateResume(ctx context.Context, data *types.ResumeData) (uuid.UUID, error) {
	contactBytes, err := json.Marshal(contactOrEmpty(data.ContactInfo))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal contact info: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO resumes (id, name, contact_info, summary, skills, additional_info)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, data.Name, contactBytes, nullIfEmpty(data.Summary),
		stringsOrEmpty(data.Skills), nullIfEmpty(data.AdditionalInfo),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}

	for _, e := range data.Experience {
		_, err = tx.Exec(ctx,
			`INSERT INTO experiences (id, resume_id, title, company, start_date, end_date,
			                          location, description, achievements, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), id, e.Title, e.Company, e.StartDate, nullIfEmpty(e.EndDate),
			nullIfEmpty(e.Location), nullIfEmpty(e.Description),
			stringsOrEmpty(e.Achievements), e.Position,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to create experience: %w", err)
		}
	}

	for _, e := range data.Education {
		_, err = tx.Exec(ctx,
			`INSERT INTO education (id, resume_id, degree, field, institution, graduation_date, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), id, e.Degree, e.Field, e.Institution, nullIfEmpty(e.GraduationDate), e.Position,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to create education: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// DeleteResume removes a resume and its entries (via cascade)
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

func contactOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
