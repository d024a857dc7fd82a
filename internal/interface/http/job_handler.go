package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/pkg/response"
	"github.com/oksasatya/go-jobboard/pkg/validation"
)

type JobHandler struct {
	Store  *application.Store
	Logger *logrus.Logger
}

func NewJobHandler(store *application.Store, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Store: store, Logger: logger}
}

type jobContent struct {
	Image       *string `json:"image"`
	Title       *string `json:"title"`
	Start       *string `json:"start"`
	Description *string `json:"description"`
}

func (j jobContent) input() application.JobInput {
	return application.JobInput{Image: j.Image, Title: j.Title, Start: j.Start, Description: j.Description}
}

type updateJobRequest struct {
	ID flexID `json:"id"`
	jobContent
}

type jobIDRequest struct {
	ID flexID `json:"id"`
}

type commentRequest struct {
	ID      flexID `json:"id"`
	Comment string `json:"comment"`
}

type likeRequest struct {
	ID     flexID `json:"id"`
	Turnon *bool  `json:"turnon"`
}

func (h *JobHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}

// Feed GET /job/feed?start=N
func (h *JobHandler) Feed(c *gin.Context) {
	start, err := application.ParseStart(c.Query("start"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	jobs, err := h.Store.GetJobs(c.Request.Context(), c.GetString("userID"), start)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

// Create POST /job
func (h *JobHandler) Create(c *gin.Context) {
	var req jobContent
	if !h.bind(c, &req) {
		return
	}
	id, err := h.Store.PostJob(c.Request.Context(), c.GetString("userID"), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// Update PUT /job
func (h *JobHandler) Update(c *gin.Context) {
	var req updateJobRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.Store.UpdateJobPost(c.Request.Context(), c.GetString("userID"), string(req.ID), req.input()); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, response.Empty)
}

// Delete DELETE /job
func (h *JobHandler) Delete(c *gin.Context) {
	var req jobIDRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.Store.DeleteJobPost(c.Request.Context(), c.GetString("userID"), string(req.ID)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, response.Empty)
}

// Comment POST /job/comment
func (h *JobHandler) Comment(c *gin.Context) {
	var req commentRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.Store.CommentOnJobPost(c.Request.Context(), c.GetString("userID"), string(req.ID), req.Comment); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, response.Empty)
}

// Like PUT /job/like
func (h *JobHandler) Like(c *gin.Context) {
	var req likeRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.Store.LikeJobPost(c.Request.Context(), c.GetString("userID"), string(req.ID), req.Turnon); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, response.Empty)
}
