package repository

import (
	"database/sql"

	"github.com/satyam3824/content-repurposer/internal/model"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) SaveJob(job *model.RepurposeJob) error {
	return r.db.QueryRow(`
		INSERT INTO repurpose_job(content, format, audience, tone, length, num_slides, status)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, job.Content, job.Format, job.Audience, job.Tone, job.Length, job.NumSlides, model.StatusPending).Scan(&job.ID)
}

func (r *JobRepository) GetJobByID(id int64) (*model.RepurposeJob, error) {
	var j model.RepurposeJob
	err := r.db.QueryRow(`
		SELECT id, content, format, audience, tone, length, num_slides, status, created_at
		FROM repurpose_job
		WHERE id = $1
	`, id).Scan(&j.ID, &j.Content, &j.Format, &j.Audience, &j.Tone, &j.Length, &j.NumSlides, &j.Status, &j.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &j, nil
}

func (r *JobRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE repurpose_job SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

// SaveResultAndComplete stores the result and marks the job completed in
// one transaction, so a crash never leaves a completed job without output.
func (r *JobRepository) SaveResultAndComplete(result *model.RepurposeResult, jobID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO repurpose_result(job_id, output, model_used, prompt_version)
		VALUES($1, $2, $3, $4)
		RETURNING id
	`, result.JobID, result.Output, result.ModelUsed, result.PromptVersion).Scan(&result.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE repurpose_job SET status = $1 WHERE id = $2
	`, model.StatusCompleted, jobID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *JobRepository) SaveError(jobID int64, message string, errorType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(job_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, jobID, message, errorType)
	return err
}

func (r *JobRepository) GetErrorCount(jobID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error WHERE job_id = $1
	`, jobID).Scan(&count)
	return count, err
}

func (r *JobRepository) GetJobWithResult(id int64) (*model.JobWithResult, error) {
	var j model.JobWithResult
	var output, modelUsed sql.NullString
	err := r.db.QueryRow(`
		SELECT j.id, j.content, j.format, j.audience, j.tone, j.length, j.num_slides, j.status, j.created_at,
		       r.output, r.model_used
		FROM repurpose_job j
		LEFT JOIN repurpose_result r ON r.job_id = j.id
		WHERE j.id = $1
	`, id).Scan(&j.ID, &j.Content, &j.Format, &j.Audience, &j.Tone, &j.Length, &j.NumSlides, &j.Status, &j.CreatedAt,
		&output, &modelUsed)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	j.Output = output.String
	j.ModelUsed = modelUsed.String
	return &j, nil
}

func (r *JobRepository) GetRecentJobs(limit int, offset int) ([]model.JobWithResult, error) {
	rows, err := r.db.Query(`
		SELECT j.id, j.content, j.format, j.audience, j.tone, j.length, j.num_slides, j.status, j.created_at,
		       r.output, r.model_used
		FROM repurpose_job j
		LEFT JOIN repurpose_result r ON r.job_id = j.id
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.JobWithResult
	for rows.Next() {
		var j model.JobWithResult
		var output, modelUsed sql.NullString
		err := rows.Scan(&j.ID, &j.Content, &j.Format, &j.Audience, &j.Tone, &j.Length, &j.NumSlides, &j.Status, &j.CreatedAt,
			&output, &modelUsed)
		if err != nil {
			return nil, err
		}
		j.Output = output.String
		j.ModelUsed = modelUsed.String
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *JobRepository) GetJobTotal() (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM repurpose_job
	`).Scan(&count)
	return count, err
}
