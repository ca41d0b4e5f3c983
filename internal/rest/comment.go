package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-comments-api/domain"
	"github.com/Guyuepp/go-comments-api/internal/rest/middleware"
	"github.com/Guyuepp/go-comments-api/internal/rest/request"
)

const (
	DefaultPerPage = domain.DefaultPerPage
	MaxPerPage     = domain.MaxPerPage
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service    domain.CommentUsecase
	PerPage    int
	MaxPerPage int
}

func NewCommentHandler(svc domain.CommentUsecase, perPage, maxPerPage int) *CommentHandler {
	if maxPerPage <= 0 {
		maxPerPage = MaxPerPage
	}
	if perPage <= 0 || perPage > maxPerPage {
		perPage = min(DefaultPerPage, maxPerPage)
	}
	return &CommentHandler{
		Service:    svc,
		PerPage:    perPage,
		MaxPerPage: maxPerPage,
	}
}

// Register mounts the comment routes on r.
func (h *CommentHandler) Register(r gin.IRouter) {
	r.GET("/comments", h.FetchComments)
	r.GET("/comments/:id", h.GetByID)
	r.POST("/comments", h.CreateComment)
}

// FetchComments will fetch one page of comments based on given params
func (h *CommentHandler) FetchComments(c *gin.Context) {
	var req request.ListComments
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	perPage, err := strconv.Atoi(c.Query("per_page"))
	if err != nil || perPage < 1 || perPage > h.MaxPerPage {
		if c.Query("per_page") != "" {
			logrus.Warnf("Invalid param 'per_page': %q", c.Query("per_page"))
		}
		perPage = h.PerPage
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		logrus.Warnf("Invalid param 'page': %q", c.Query("page"))
		page = 1
	}

	actor := middleware.ActorFrom(c)
	res, err := h.Service.List(c.Request.Context(), actor, req.ToDomain(perPage, page), viewFor(actor, req.Context))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetByID will get a comment by given id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	env, err := h.Service.Get(c.Request.Context(), actor, id, viewFor(actor, c.Query("context")))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, env)
}

// CreateComment will store a comment by given request body
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	in := req.ToDomain()
	in.Agent = c.Request.UserAgent()

	res, err := h.Service.Create(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Header("Location", res.Location)
	c.JSON(res.Status, res.Comment)
}

// viewFor grants the edit view to privileged actors only.
func viewFor(actor domain.Actor, requested string) string {
	if requested == domain.EditContext && actor.IsPrivileged() {
		return domain.EditContext
	}
	return domain.ViewContext
}
