package handlers

import (
	"context"
	"net/http"

	"TaskBoardService/commands"
	"TaskBoardService/middleware"
	"TaskBoardService/models"
	"TaskBoardService/repository"
	"TaskBoardService/response"
	"TaskBoardService/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TaskRepository is the persistence the task handlers need.
type TaskRepository interface {
	Create(ctx context.Context, cmd commands.CreateTaskCommand) (int64, error)
	Get(ctx context.Context, id int64) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, cmd commands.UpdateTaskCommand) error
	Delete(ctx context.Context, cmd commands.DeleteTaskCommand) error
}

// TaskHandler serves /task.
type TaskHandler struct {
	repo     TaskRepository
	validate *validation.Engine
	log      *logrus.Logger
	isDev    bool
}

// NewTaskHandler creates a task handler.
func NewTaskHandler(repo TaskRepository, v *validation.Engine, log *logrus.Logger, isDev bool) *TaskHandler {
	return &TaskHandler{repo: repo, validate: v, log: log, isDev: isDev}
}

func (h *TaskHandler) fields(c *gin.Context, op string) logrus.Fields {
	return logrus.Fields{
		"task operation": op,
		"request":        c.Request.Method + " " + c.Request.URL.Path,
		"request_id":     middleware.GetRequestID(c),
	}
}

func (h *TaskHandler) fail(c *gin.Context, op string, err error) {
	failure(c, h.log, h.isDev, h.fields(c, op), err, MsgTaskNotFound, MsgConflict)
}

// Create handles POST /task. It validates the body, applies the defaults
// (priority Medium, status Pending) and answers with the generated id only.
//
// Example request body:
//
//	{
//	  "user_id": 1,
//	  "category_id": 2,
//	  "title": "Write report",
//	  "due_date": "2025-03-01",
//	  "priority": "High"
//	}
//
// Example response (201):
//
//	{ "id": 7 }
//
// A body breaking any rule gets 400 with every violation:
//
//	{ "errors": [ { "msg": "User ID must be a positive integer" }, ... ] }
func (h *TaskHandler) Create(c *gin.Context) {
	const op = "create task"
	f, err := commands.DecodeFields(c.Request.Body)
	if err != nil {
		badBody(c, h.log, h.fields(c, op), err)
		return
	}
	if err := h.validate.Create(f); err != nil {
		h.fail(c, op, err)
		return
	}

	id, err := h.repo.Create(c.Request.Context(), commands.NewCreateTaskCommand(f))
	if err != nil {
		h.fail(c, op, err)
		return
	}
	h.log.WithFields(h.fields(c, op)).WithField("id", id).Info("task created")
	c.JSON(http.StatusCreated, response.Created{ID: id})
}

// Get handles GET /task/{id} and answers with the canonical task.
//
// The id is read leniently: "12abc" is 12, and anything without a leading
// number is treated as 0, which never matches a row and yields
// 404 {"error": "Task not found"}.
//
// Example response:
//
//	{
//	  "id": 7,
//	  "user_id": 1,
//	  "category_id": 2,
//	  "title": "Write report",
//	  "due_date": "2025-03-01",
//	  "priority": "High",
//	  "status": "Pending",
//	  "created_at": "2025-02-20T10:00:00Z",
//	  "updated_at": "2025-02-20T10:00:00Z"
//	}
func (h *TaskHandler) Get(c *gin.Context) {
	const op = "get task by id"
	id := repository.ParseID(c.Param("id"))
	task, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// List handles GET /task and answers with every task, newest first. An
// empty table is an empty array.
func (h *TaskHandler) List(c *gin.Context) {
	const op = "get all tasks"
	tasks, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, op, err)
		return
	}
	h.log.WithFields(h.fields(c, op)).WithField("count", len(tasks)).Debug("tasks listed")
	c.JSON(http.StatusOK, tasks)
}

// Update handles PUT /task/{id}. Only the fields present in the body are
// written; an explicit null clears description or due_date.
//
// Example request body:
//
//	{ "status": "Completed" }
//
// Example response:
//
//	{ "message": "Task updated" }
//
// An empty body, or one without any task field, gets
// 400 {"error": "No updates provided"}. Validation runs before the id is
// looked up, so an invalid body on a missing task is still a 400.
func (h *TaskHandler) Update(c *gin.Context) {
	const op = "update task"
	f, err := commands.DecodeFields(c.Request.Body)
	if err != nil {
		badBody(c, h.log, h.fields(c, op), err)
		return
	}
	if err := h.validate.Update(f); err != nil {
		h.fail(c, op, err)
		return
	}

	cmd := commands.NewUpdateTaskCommand(repository.ParseID(c.Param("id")), f)
	if len(cmd.Changes) == 0 {
		h.fail(c, op, models.ErrNoUpdates)
		return
	}
	if err := h.repo.Update(c.Request.Context(), cmd); err != nil {
		h.fail(c, op, err)
		return
	}
	h.log.WithFields(h.fields(c, op)).WithField("id", cmd.ID).Info("task updated")
	c.JSON(http.StatusOK, response.Message{Message: MsgTaskUpdated})
}

// Delete handles DELETE /task/{id}. The task's category and user are left
// untouched.
//
// Example response:
//
//	{ "message": "Task deleted", "id": 7 }
func (h *TaskHandler) Delete(c *gin.Context) {
	const op = "delete task"
	cmd := commands.DeleteTaskCommand{ID: repository.ParseID(c.Param("id"))}
	if err := h.repo.Delete(c.Request.Context(), cmd); err != nil {
		h.fail(c, op, err)
		return
	}
	h.log.WithFields(h.fields(c, op)).WithField("id", cmd.ID).Info("task deleted")
	c.JSON(http.StatusOK, response.Deleted{Message: MsgTaskDeleted, ID: cmd.ID})
}
