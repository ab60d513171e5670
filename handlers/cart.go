package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/cart"
	"github.com/Ebelene1994/Presto-Pizza/catalog"
	"github.com/Ebelene1994/Presto-Pizza/models"
)

// CartHandler mutates the session's cart ledger. Every route behind it is
// session-gated.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type addItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	SizeLabel string `json:"size_label"`
}

type updateItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
	SizeLabel string `json:"size_label"`
}

type promoInput struct {
	Code string `json:"code" binding:"required"`
}

type tipInput struct {
	Rate *float64 `json:"rate" binding:"required"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	c.JSON(http.StatusOK, cartView(s.Cart, ""))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, ok := catalog.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found: " + input.ProductID})
		return
	}

	var size *models.SizeOption
	if input.SizeLabel != "" {
		size = product.SizeByLabel(input.SizeLabel)
		if size == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Product %s has no size %q", input.ProductID, input.SizeLabel)})
			return
		}
	}

	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	s.Cart.Add(product, size)

	c.JSON(http.StatusOK, cartView(s.Cart, fmt.Sprintf("Added %s to cart!", product.Name)))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var input updateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	s.Cart.UpdateQuantity(input.ProductID, input.Delta, input.SizeLabel)

	c.JSON(http.StatusOK, cartView(s.Cart, ""))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("id")
	sizeLabel := c.Query("size")

	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	s.Cart.Remove(productID, sizeLabel)

	c.JSON(http.StatusOK, cartView(s.Cart, ""))
}

func (h *CartHandler) ApplyPromo(c *gin.Context) {
	var input promoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	if err := s.Cart.ApplyPromo(input.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid code. Try %q", cart.PromoCode)})
		return
	}

	c.JSON(http.StatusOK, cartView(s.Cart, "Promo code applied!"))
}

func (h *CartHandler) SetTip(c *gin.Context) {
	var input tipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	if err := s.Cart.SetTipRate(*input.Rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tip rate must be one of 0, 0.10, 0.15, 0.20, 0.25"})
		return
	}

	c.JSON(http.StatusOK, cartView(s.Cart, ""))
}

// cartView is the payload every cart mutation answers with. Callers hold the
// session lock.
func cartView(l *cart.Ledger, toast string) gin.H {
	totals := l.Totals()
	view := gin.H{
		"items":          l.Items(),
		"promo_applied":  l.PromoApplied(),
		"tip_rate":       l.TipRate(),
		"totals":         totals,
		"display_totals": totals.Display(),
	}
	if toast != "" {
		view["toast"] = toast
	}
	return view
}
