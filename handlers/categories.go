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

// CategoryRepository is the persistence the category handlers need.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, cmd commands.CreateCategoryCommand) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryHandler serves /category.
type CategoryHandler struct {
	repo     CategoryRepository
	validate *validation.Engine
	log      *logrus.Logger
	isDev    bool
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(repo CategoryRepository, v *validation.Engine, log *logrus.Logger, isDev bool) *CategoryHandler {
	return &CategoryHandler{repo: repo, validate: v, log: log, isDev: isDev}
}

func (h *CategoryHandler) fail(c *gin.Context, op string, err error) {
	failure(c, h.log, h.isDev, logrus.Fields{
		"category operation": op,
		"request":            c.Request.Method + " " + c.Request.URL.Path,
		"request_id":         middleware.GetRequestID(c),
	}, err, MsgCategoryNotFound, MsgCategoryExists)
}

// List handles GET /category. Categories are ordered by name; an empty
// table is 404 {"error": "No categories are found"}.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, "get all categories", err)
		return
	}
	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, response.Failure{Error: MsgNoCategories})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get handles GET /category/{id}.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.repo.Get(c.Request.Context(), repository.ParseID(c.Param("id")))
	if err != nil {
		h.fail(c, "get category by id", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Create handles POST /category with a body such as {"category": "Work"}.
// The name is trimmed before it is stored; an existing name is
// 409 {"error": "Category already exists"}.
func (h *CategoryHandler) Create(c *gin.Context) {
	const op = "create category"
	f, err := commands.DecodeFields(c.Request.Body)
	if err != nil {
		h.fail(c, op, validation.Errors{{Field: "category", Msg: validation.MsgCategory}})
		return
	}
	if err := h.validate.Category(f); err != nil {
		h.fail(c, op, err)
		return
	}
	id, err := h.repo.Create(c.Request.Context(), commands.NewCreateCategoryCommand(f))
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, response.Created{ID: id})
}

// Delete handles DELETE /category/{id}. Tasks in the category stay, with a
// null category_id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), repository.ParseID(c.Param("id"))); err != nil {
		h.fail(c, "delete category", err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: MsgCategoryDeleted})
}
