// Package handlers provides the HTTP request handlers for TaskBoardService.
//
// The task handlers are the authoritative side of the sync protocol: every
// write is validated here before it reaches the database, and a write never
// returns the entity it produced. A create answers with the new id only and
// an update or delete with a short message; clients read the canonical task
// back with GET /task/{id}.
//
// Category and user handlers expose the small lookup tables a client needs
// to label and fill in tasks.
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"TaskBoardService/models"
	"TaskBoardService/repository"
	"TaskBoardService/response"
	"TaskBoardService/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Messages returned in {error} and {message} bodies.
const (
	MsgInvalidBody      = "Invalid request body"
	MsgNoUpdates        = "No updates provided"
	MsgTaskNotFound     = "Task not found"
	MsgTaskUpdated      = "Task updated"
	MsgTaskDeleted      = "Task deleted"
	MsgConflict         = "Request conflicts with stored data"
	MsgCategoryNotFound = "Category not found"
	MsgCategoryExists   = "Category already exists"
	MsgCategoryDeleted  = "Category deleted"
	MsgNoCategories     = "No categories are found"
	MsgNoUsers          = "No users are found"
	MsgHome             = "TaskBoardService is running"
)

// Handlers groups every handler served by the router.
type Handlers struct {
	Tasks      *TaskHandler
	Categories *CategoryHandler
	Users      *UserHandler
	Health     *HealthHandler
}

// New wires the repositories over db into a full set of handlers. isDev
// controls whether raw server errors reach the client.
func New(db *sql.DB, d repository.Dialect, log *logrus.Logger, isDev bool) *Handlers {
	v := validation.New()
	return &Handlers{
		Tasks:      NewTaskHandler(repository.NewTaskRepository(db, d), v, log, isDev),
		Categories: NewCategoryHandler(repository.NewCategoryRepository(db, d), v, log, isDev),
		Users:      NewUserHandler(repository.NewUserRepository(db), log, isDev),
		Health:     NewHealthHandler(db),
	}
}

// failure writes the error response for err and logs it. notFound is the
// message used when err wraps models.ErrNotFound, conflict the one used for
// models.ErrConflict.
func failure(c *gin.Context, log *logrus.Logger, isDev bool, fields logrus.Fields, err error, notFound, conflict string) {
	status := response.Status(err)
	entry := log.WithFields(fields).WithField("status", status)

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		entry.Warn(err.Error())
		c.JSON(status, response.NewValidationFailure(verrs))
	case errors.Is(err, models.ErrNoUpdates):
		entry.Warn(err.Error())
		c.JSON(status, response.Failure{Error: MsgNoUpdates})
	case errors.Is(err, models.ErrNotFound):
		entry.Info(err.Error())
		c.JSON(status, response.Failure{Error: notFound})
	case errors.Is(err, models.ErrConflict):
		entry.Warn(err.Error())
		c.JSON(status, response.Failure{Error: conflict})
	default:
		entry.Error(err.Error())
		c.JSON(status, response.Failure{Error: response.Redact(err, isDev)})
	}
}

// badBody answers a body that is not a JSON object.
func badBody(c *gin.Context, log *logrus.Logger, fields logrus.Fields, err error) {
	log.WithFields(fields).Warn(err.Error())
	c.JSON(http.StatusBadRequest, response.Failure{Error: MsgInvalidBody})
}

// Home answers GET /.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, response.Message{Message: MsgHome})
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database answers.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a health handler over db.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check answers 200 {"status":"ok"} or 503 {"error":...}.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Failure{Error: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
