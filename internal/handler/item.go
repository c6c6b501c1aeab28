package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stockpile/backend/internal/model"
	"github.com/stockpile/backend/internal/service"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create godoc
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ItemRequest true "Item fields"
// @Success 201 {object} model.Item
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.svc.Create(c.Request.Context(), user.Username, req)
	if err != nil {
		writeItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List godoc
// @Summary List own items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Item
// @Failure 401 {object} model.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.svc.List(c.Request.Context(), user.Username)
	if err != nil {
		writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get one item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item id"
// @Success 200 {object} model.Item
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), user.Username, id)
	if err != nil {
		writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update godoc
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item id"
// @Param request body model.ItemRequest true "Replacement fields"
// @Success 200 {object} model.Item
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), user.Username, id, req)
	if err != nil {
		writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete an item
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item id"
// @Success 204
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.Username, id); err != nil {
		writeItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return id, true
}

func writeItemError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case service.ErrForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to access this item"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
