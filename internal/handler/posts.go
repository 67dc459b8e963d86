package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/purehouse/post-service/internal/dto"
)

func (h *Handler) postsList(c *gin.Context) {
	posts, err := h.services.Post.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(statusOf(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	insertedID, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusOf(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.CreatePostResponse{InsertedID: insertedID})
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		c.JSON(statusOf(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsUpdate(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	modifiedCount, err := h.services.Post.Update(c.Request.Context(), postID, input)
	if err != nil {
		c.JSON(statusOf(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.UpdatePostResponse{ModifiedCount: modifiedCount})
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	deletedCount, err := h.services.Post.Delete(c.Request.Context(), postID)
	if err != nil {
		c.JSON(statusOf(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.DeletePostResponse{DeletedCount: deletedCount})
}
