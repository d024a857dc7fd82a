package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/pkg/response"
	"github.com/oksasatya/go-jobboard/pkg/validation"
)

type UserHandler struct {
	Store  *application.Store
	Logger *logrus.Logger
}

func NewUserHandler(store *application.Store, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Store: store, Logger: logger}
}

type updateProfileRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Image    string `json:"image"`
}

type watchRequest struct {
	ID     flexID `json:"id"`
	Email  string `json:"email"`
	Turnon *bool  `json:"turnon"`
}

// GetUser GET /user?userId=
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Store.GetUser(c.Request.Context(), c.Query("userId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateProfile PUT /user
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Store.UpdateProfile(c.Request.Context(), c.GetString("userID"), application.ProfileUpdate{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Image:    req.Image,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, response.Empty)
}

// Watch PUT /user/watch. The target is picked by id, or by email when id is absent.
func (h *UserHandler) Watch(c *gin.Context) {
	var req watchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	target := string(req.ID)
	if target == "" {
		target = h.Store.UserIDByEmail(c.Request.Context(), req.Email)
	}
	if err := h.Store.WatchUser(c.Request.Context(), c.GetString("userID"), target, req.Turnon); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, response.Empty)
}

// Search GET /user/search?q=&size=
func (h *UserHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	users, err := h.Store.SearchUsers(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}
