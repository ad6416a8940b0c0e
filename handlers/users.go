package handlers

import (
	"context"
	"net/http"

	"TaskBoardService/middleware"
	"TaskBoardService/models"
	"TaskBoardService/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserRepository is the persistence the user handler needs.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserHandler serves /user.
type UserHandler struct {
	repo  UserRepository
	log   *logrus.Logger
	isDev bool
}

// NewUserHandler creates a user handler.
func NewUserHandler(repo UserRepository, log *logrus.Logger, isDev bool) *UserHandler {
	return &UserHandler{repo: repo, log: log, isDev: isDev}
}

// List handles GET /user. Users are ordered by username; an empty table is
// 404 {"error": "No users are found"}.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		failure(c, h.log, h.isDev, logrus.Fields{
			"user operation": "get all users",
			"request":        c.Request.Method + " " + c.Request.URL.Path,
			"request_id":     middleware.GetRequestID(c),
		}, err, MsgNoUsers, MsgConflict)
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, response.Failure{Error: MsgNoUsers})
		return
	}
	c.JSON(http.StatusOK, users)
}
