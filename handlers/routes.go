package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/internal/session"
)

// RegisterRoutes wires every handler under /api/v1. Cart, checkout and
// account routes sit behind the session gate; menu, content, forms and
// navigation are open.
func RegisterRoutes(router *gin.Engine, sessions *session.Manager,
	menu *MenuHandler, cartH *CartHandler, checkout *CheckoutHandler,
	auth *AuthHandler, forms *FormsHandler, content *ContentHandler,
	nav *NavigationHandler) {

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Presto Ordering UP"})
	})

	apiV1 := router.Group("/api/v1")
	apiV1.Use(SessionMiddleware(sessions))

	apiV1.GET("/menu", menu.ListMenu)
	apiV1.GET("/menu/:id", menu.GetProduct)

	apiV1.GET("/locations", content.ListLocations)
	apiV1.GET("/locations/:id", content.GetLocation)
	apiV1.GET("/blog", content.ListBlogPosts)
	apiV1.GET("/blog/:id", content.GetBlogPost)
	apiV1.GET("/careers/jobs", content.ListJobs)
	apiV1.GET("/gift-cards/themes", content.ListGiftCardThemes)

	apiV1.POST("/navigate", nav.Navigate)
	apiV1.POST("/start-order", nav.StartOrder)

	apiV1.POST("/auth/signup", auth.Signup)
	apiV1.POST("/auth/login", auth.Login)
	apiV1.POST("/auth/login/provider", auth.LoginWithProvider)
	apiV1.POST("/auth/password-reset", auth.SendPasswordReset)
	apiV1.POST("/auth/verification", auth.ResendVerification)

	apiV1.POST("/forms/contact", forms.Contact)
	apiV1.POST("/forms/newsletter", forms.Newsletter)
	apiV1.POST("/forms/catering", forms.Catering)
	apiV1.POST("/forms/franchise", forms.Franchise)
	apiV1.POST("/forms/jobs", forms.JobApplication)

	authed := apiV1.Group("")
	authed.Use(RequireSession())

	authed.POST("/auth/logout", auth.Logout)
	authed.GET("/me", auth.Me)
	authed.PATCH("/me", auth.UpdateProfile)
	authed.DELETE("/me", auth.DeleteAccount)
	authed.GET("/me/store", auth.GetFavoriteStore)
	authed.PUT("/me/store", auth.SetFavoriteStore)

	authed.GET("/cart", cartH.GetCart)
	authed.POST("/cart/items", cartH.AddItem)
	authed.PATCH("/cart/items", cartH.UpdateItem)
	authed.DELETE("/cart/items/:id", cartH.RemoveItem)
	authed.POST("/cart/promo", cartH.ApplyPromo)
	authed.PUT("/cart/tip", cartH.SetTip)

	authed.POST("/order/info", checkout.SetOrderInfo)
	authed.GET("/order/info", checkout.GetOrderInfo)
	authed.POST("/checkout/pay", checkout.Pay)
	authed.GET("/checkout/status", checkout.PaymentStatus)
	authed.GET("/orders/current", checkout.TrackOrder)
}
