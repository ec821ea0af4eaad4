package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/satyam3824/content-repurposer/internal/model"
)

type fakeJobStore struct {
	saved    []model.RepurposeJob
	job      *model.JobWithResult
	jobs     []model.JobWithResult
	jobTotal int
	err      error
}

func (f *fakeJobStore) SaveJob(job *model.RepurposeJob) error {
	if f.err != nil {
		return f.err
	}
	job.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *job)
	return nil
}

func (f *fakeJobStore) GetJobWithResult(id int64) (*model.JobWithResult, error) {
	return f.job, f.err
}

func (f *fakeJobStore) GetRecentJobs(limit int, offset int) ([]model.JobWithResult, error) {
	return f.jobs, f.err
}

func (f *fakeJobStore) GetJobTotal() (int, error) {
	return f.jobTotal, f.err
}

type fakeQueue struct {
	pushed []int64
	err    error
}

func (f *fakeQueue) Push(id int64) error {
	if f.err != nil {
		return f.err
	}
	f.pushed = append(f.pushed, id)
	return nil
}

func newTestJobRouter(store JobStore, queue JobQueue) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewJobHandler(store, queue)
	r.POST("/jobs", h.CreateJob)
	r.GET("/jobs", h.GetJobs)
	r.GET("/jobs/:id", h.GetJob)
	r.GET("/health", h.GetHealth)
	return r
}

func postJob(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateJob_EnqueuesAndReturnsAccepted(t *testing.T) {
	store := &fakeJobStore{}
	queue := &fakeQueue{}
	r := newTestJobRouter(store, queue)

	w := postJob(r, `{"content": "AI is everywhere.", "format": "tweet_thread", "tone": "witty"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var res JobResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, model.StatusPending, res.Status)

	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, "tweet_thread", store.saved[0].Format)
	assert.Equal(t, []int64{1}, queue.pushed)
}

func TestCreateJob_EmptyContent(t *testing.T) {
	store := &fakeJobStore{}
	queue := &fakeQueue{}
	r := newTestJobRouter(store, queue)

	w := postJob(r, `{"content": "   ", "format": "blog_post"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, len(store.saved))
	assert.Equal(t, 0, len(queue.pushed))
}

func TestCreateJob_PlaceholderFormat(t *testing.T) {
	store := &fakeJobStore{}
	queue := &fakeQueue{}
	r := newTestJobRouter(store, queue)

	w := postJob(r, `{"content": "AI is everywhere.", "format": "linkedin_post"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, len(store.saved))
}

func TestCreateJob_OutOfRangeParam(t *testing.T) {
	store := &fakeJobStore{}
	queue := &fakeQueue{}
	r := newTestJobRouter(store, queue)

	w := postJob(r, `{"content": "AI is everywhere.", "format": "instagram_carousel", "num_slides": 12}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, len(store.saved))
}

func TestCreateJob_DBError(t *testing.T) {
	store := &fakeJobStore{err: errors.New("DB down")}
	queue := &fakeQueue{}
	r := newTestJobRouter(store, queue)

	w := postJob(r, `{"content": "AI is everywhere.", "format": "blog_post"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, len(queue.pushed))
}

func TestGetJob_Completed(t *testing.T) {
	store := &fakeJobStore{
		job: &model.JobWithResult{
			RepurposeJob: model.RepurposeJob{
				ID:        7,
				Format:    "blog_post",
				Status:    model.StatusCompleted,
				CreatedAt: time.Now(),
			},
			Output:    "A generated blog post.",
			ModelUsed: "gpt-4o-mini",
		},
	}
	r := newTestJobRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res JobResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, model.StatusCompleted, res.Status)
	assert.Equal(t, "A generated blog post.", res.Result)
	assert.Equal(t, "gpt-4o-mini", res.ModelUsed)
}

func TestGetJob_NotFound(t *testing.T) {
	r := newTestJobRouter(&fakeJobStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetJob_InvalidID(t *testing.T) {
	r := newTestJobRouter(&fakeJobStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJobs_DefaultLimit(t *testing.T) {
	store := &fakeJobStore{
		jobs:     []model.JobWithResult{},
		jobTotal: 0,
	}
	r := newTestJobRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res JobListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestGetHealth_DBError(t *testing.T) {
	store := &fakeJobStore{err: errors.New("DB down")}
	r := newTestJobRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
