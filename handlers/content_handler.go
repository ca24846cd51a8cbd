package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"newsroom-api/helper"
	"newsroom-api/models"
	"newsroom-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentHandler struct {
	contentService services.ContentService
	helper         *helper.HTTPHelper
}

func NewContentHandler(contentService services.ContentService, h *helper.HTTPHelper) *ContentHandler {
	return &ContentHandler{contentService: contentService, helper: h}
}

// GetPublicContents lists published content, optionally filtered by type and
// category, newest first.
func (h *ContentHandler) GetPublicContents(c *gin.Context) {
	var params models.ContentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.helper.BindingMessage(err)})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	contents, total, err := h.contentService.GetPublishedContents(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contents":   contents,
		"pagination": h.helper.GeneratePaging(c, params.Page, params.Limit, total),
	})
}

func (h *ContentHandler) GetPublicContent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content ID"})
		return
	}

	content, err := h.contentService.GetPublishedContent(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) GetPublisherContents(c *gin.Context) {
	userID, _ := c.Get("user_id")

	contents, err := h.contentService.GetPublisherContents(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contents": contents})
}

func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.helper.BindingMessage(err)})
		return
	}

	content, err := h.contentService.CreateContent(req, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) UpdateContent(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content ID"})
		return
	}

	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.helper.BindingMessage(err)})
		return
	}

	content, err := h.contentService.UpdateContent(uint(id), req, userID.(uint))
	if err != nil {
		// Not-owned reads the same as not-found so ids of other
		// publishers cannot be probed.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) PublishContent(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content ID"})
		return
	}

	content, err := h.contentService.PublishContent(uint(id), userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}
