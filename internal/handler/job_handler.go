package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satyam3824/content-repurposer/internal/model"
	"github.com/satyam3824/content-repurposer/pkg/repurpose"
)

type JobStore interface {
	SaveJob(job *model.RepurposeJob) error
	GetJobWithResult(id int64) (*model.JobWithResult, error)
	GetRecentJobs(limit, offset int) ([]model.JobWithResult, error)
	GetJobTotal() (int, error)
}

type JobQueue interface {
	Push(id int64) error
}

type JobHandler struct {
	repository JobStore
	queue      JobQueue
}

func NewJobHandler(repository JobStore, queue JobQueue) *JobHandler {
	return &JobHandler{repository: repository, queue: queue}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is empty"})
		return
	}

	format, err := repurpose.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown format: " + req.Format})
		return
	}

	params := repurpose.Params{
		Audience:  req.Audience,
		Tone:      req.Tone,
		Length:    req.Length,
		NumSlides: req.NumSlides,
	}

	// Bad jobs are rejected here rather than failing later in the worker.
	if err := repurpose.ValidateParams(format, params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := &model.RepurposeJob{
		Content:   req.Content,
		Format:    string(format),
		Audience:  req.Audience,
		Tone:      req.Tone,
		Length:    req.Length,
		NumSlides: req.NumSlides,
	}

	if err := h.repository.SaveJob(job); err != nil {
		slog.Error("error saving job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := h.queue.Push(job.ID); err != nil {
		slog.Error("error enqueueing job", "error", err, "job_id", job.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Queue error"})
		return
	}

	c.JSON(http.StatusAccepted, JobResponse{
		ID:        job.ID,
		Format:    job.Format,
		Status:    model.StatusPending,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")

	jobID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid job id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	job, err := h.repository.GetJobWithResult(jobID)
	if err != nil {
		slog.Error("error fetching job", "error", err, "job_id", jobID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, toJobResponse(*job))
}

func (h *JobHandler) GetJobs(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	jobs, err := h.repository.GetRecentJobs(limit, offset)
	if err != nil {
		slog.Error("error fetching jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetJobTotal()
	if err != nil {
		slog.Error("error fetching job total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := JobListResponse{
		Jobs:   []JobResponse{},
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, j := range jobs {
		res.Jobs = append(res.Jobs, toJobResponse(j))
	}

	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetJobTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toJobResponse(j model.JobWithResult) JobResponse {
	return JobResponse{
		ID:        j.ID,
		Format:    j.Format,
		Status:    j.Status,
		Result:    j.Output,
		ModelUsed: j.ModelUsed,
		CreatedAt: j.CreatedAt.Format(time.RFC3339),
	}
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
