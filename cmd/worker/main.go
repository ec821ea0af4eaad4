package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/satyam3824/content-repurposer/db"
	"github.com/satyam3824/content-repurposer/internal/model"
	"github.com/satyam3824/content-repurposer/internal/repository"
	"github.com/satyam3824/content-repurposer/pkg/llm"
	"github.com/satyam3824/content-repurposer/pkg/repurpose"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxRetries = 3

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	jobRepository := repository.NewJobRepository(db.DB)

	client, err := llm.NewFromEnv()
	if err != nil {
		log.Fatalf("error building LLM client: %v", err)
	}

	service, err := repurpose.NewService(client)
	if err != nil {
		log.Fatalf("error building repurpose service: %v", err)
	}

	slog.Info("worker started", "model", client.ModelName())

	for {
		id, err := db.PopFromQueue(db.JobQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		jobID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid job id in queue", "id", id, "error", err)
			continue
		}

		errorCount, err := jobRepository.GetErrorCount(jobID)
		if err != nil {
			slog.Error("error getting error count", "error", err, "job_id", jobID)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("job exceeded max retries, marking as failed", "job_id", jobID, "error_count", errorCount)
			jobRepository.UpdateStatus(jobID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		job, err := jobRepository.GetJobByID(jobID)
		if err != nil {
			slog.Error("error getting job from DB", "error", err, "job_id", jobID)
			continue
		}

		if job == nil {
			slog.Warn("job not found in DB", "job_id", jobID)
			continue
		}

		jobRepository.UpdateStatus(jobID, model.StatusProcessing)

		params := repurpose.Params{
			Audience:  job.Audience,
			Tone:      job.Tone,
			Length:    job.Length,
			NumSlides: job.NumSlides,
		}

		output, err := service.Repurpose(context.Background(), job.Content, repurpose.Format(job.Format), params)
		if err != nil {
			if isPermanent(err) {
				slog.Warn("job rejected by service, marking as failed", "error", err, "job_id", jobID)
				jobRepository.SaveError(jobID, err.Error(), "invalid_job")
				jobRepository.UpdateStatus(jobID, model.StatusFailed)
				continue
			}

			slog.Error("error repurposing job", "error", err, "job_id", jobID)

			jobRepository.SaveError(jobID, err.Error(), "llm_error")
			jobRepository.UpdateStatus(jobID, model.StatusPending)

			db.PushToQueue(db.JobQueueKey, id)

			time.Sleep(5 * time.Second)
			continue
		}

		result := model.RepurposeResult{
			JobID:         job.ID,
			Output:        output,
			ModelUsed:     client.ModelName(),
			PromptVersion: repurpose.PromptVersion,
		}

		err = jobRepository.SaveResultAndComplete(&result, job.ID)
		if err != nil {
			slog.Error("error saving repurpose result", "error", err, "job_id", jobID)
			continue
		}

		slog.Info("job repurposed successfully", "job_id", job.ID, "format", job.Format)
	}

}

// isPermanent reports whether retrying the job could ever succeed. Request
// validation failures cannot; backend and parsing failures might.
func isPermanent(err error) bool {
	return errors.Is(err, repurpose.ErrEmptyContent) ||
		errors.Is(err, repurpose.ErrUnsupportedFormat) ||
		errors.Is(err, repurpose.ErrInvalidParam)
}
