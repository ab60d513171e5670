package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/catalog"
)

// ContentHandler serves the marketing content: locations, blog, careers and
// gift card themes.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.Locations})
}

func (h *ContentHandler) GetLocation(c *gin.Context) {
	id := c.Param("id")
	loc, ok := catalog.LocationByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found: " + id})
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.BlogPosts})
}

func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	id := c.Param("id")
	post, ok := catalog.BlogPostByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found: " + id})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":         catalog.Jobs,
		"testimonials": catalog.Testimonials,
	})
}

func (h *ContentHandler) ListGiftCardThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.GiftCardThemes})
}
