package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/internal/flow"
)

// NavigationHandler exposes the page router. Anonymous callers get a
// stateless answer; signed-in callers also have the landing page recorded on
// their session.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type navigateInput struct {
	To string `json:"to" binding:"required"`
}

func (h *NavigationHandler) Navigate(c *gin.Context) {
	var input navigateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ctx := flow.Context{}
	s, ok := currentSession(c)
	if ok {
		s.Lock()
		ctx = s.FlowContext()
		s.Unlock()
	}

	result, err := flow.Navigate(flow.Page(input.To), ctx)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown page: " + input.To})
		return
	}

	if ok {
		s.Lock()
		s.Page = result.Page
		s.Unlock()
	}

	c.JSON(http.StatusOK, navView(result))
}

// StartOrder is the "Order Now" button: login, then order setup, then menu.
func (h *NavigationHandler) StartOrder(c *gin.Context) {
	ctx := flow.Context{}
	s, ok := currentSession(c)
	if ok {
		s.Lock()
		ctx = s.FlowContext()
		s.Unlock()
	}

	result := flow.StartOrder(ctx)
	if ok {
		s.Lock()
		s.Page = result.Page
		s.Unlock()
	}

	c.JSON(http.StatusOK, navView(result))
}

func navView(result flow.Result) gin.H {
	view := gin.H{
		"page":       string(result.Page),
		"redirected": result.Redirected,
	}
	if result.Toast != "" {
		view["toast"] = result.Toast
	}
	return view
}
