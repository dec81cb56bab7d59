package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkmark/internal/pkg/response"
	"linkmark/internal/service"
)

type BookmarkHandler struct {
	bookmarks *service.BookmarkService
}

func NewBookmarkHandler(bookmarks *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

type createBookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func (h *BookmarkHandler) Create(c *gin.Context) {
	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	if req.Title == "" || req.Link == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "title and link required")
		return
	}
	bm, err := h.bookmarks.Create(c.Request.Context(), getUserID(c), service.BookmarkCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, bm)
}

func (h *BookmarkHandler) List(c *gin.Context) {
	bms, err := h.bookmarks.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bms)
}

func (h *BookmarkHandler) Get(c *gin.Context) {
	bm, err := h.bookmarks.Get(c.Request.Context(), getUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bm)
}

type editBookmarkRequest struct {
	Title       nullableString `json:"title"`
	Description nullableString `json:"description"`
	Link        nullableString `json:"link"`
}

func (h *BookmarkHandler) Edit(c *gin.Context) {
	var req editBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	// title and link are required-non-empty, so neither null nor "" is a
	// legal value for them; a null description clears it
	if req.Title.set && (!req.Title.valid || req.Title.value == "") {
		response.Error(c, http.StatusBadRequest, "invalid", "title must be a non-empty string")
		return
	}
	if req.Link.set && (!req.Link.valid || req.Link.value == "") {
		response.Error(c, http.StatusBadRequest, "invalid", "link must be a non-empty string")
		return
	}
	var patch service.BookmarkPatch
	if req.Title.set {
		patch.Title = &req.Title.value
	}
	if req.Description.set {
		patch.Description = &req.Description.value
	}
	if req.Link.set {
		patch.Link = &req.Link.value
	}
	bm, err := h.bookmarks.Update(c.Request.Context(), getUserID(c), c.Param("id"), patch)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bm)
}

func (h *BookmarkHandler) Delete(c *gin.Context) {
	if err := h.bookmarks.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.NoContent(c)
}
