package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/catalog"
	"github.com/Ebelene1994/Presto-Pizza/models"
)

// MenuHandler serves the static catalog.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

func (h *MenuHandler) ListMenu(c *gin.Context) {
	// Pagination
	limitStr := c.DefaultQuery("limit", "50")
	offsetStr := c.DefaultQuery("offset", "0")
	limit, errL := strconv.Atoi(limitStr)
	offset, errO := strconv.Atoi(offsetStr)
	if errL != nil || errO != nil || limit <= 0 || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}
	if limit > 100 {
		limit = 100
	}

	category := models.Category(c.Query("category"))
	if category != "" && !models.ValidCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + string(category)})
		return
	}

	products := catalog.ProductsByCategory(category)
	total := len(products)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products[offset:end],
		"pagination": gin.H{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

func (h *MenuHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	product, ok := catalog.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found: " + id})
		return
	}
	c.JSON(http.StatusOK, product)
}
