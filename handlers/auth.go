package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/catalog"
	"github.com/Ebelene1994/Presto-Pizza/client"
	"github.com/Ebelene1994/Presto-Pizza/internal/flow"
	"github.com/Ebelene1994/Presto-Pizza/internal/session"
	"github.com/Ebelene1994/Presto-Pizza/models"
	"github.com/Ebelene1994/Presto-Pizza/store"
)

// AuthHandler bridges the external identity provider, the profile document
// store and the session registry.
type AuthHandler struct {
	identity *client.IdentityClient
	profiles *store.MongoProfileStore
	prefs    *store.RedisPrefsStore
	sessions *session.Manager
}

func NewAuthHandler(identity *client.IdentityClient, profiles *store.MongoProfileStore, prefs *store.RedisPrefsStore, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{identity: identity, profiles: profiles, prefs: prefs, sessions: sessions}
}

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	PhotoURL string `json:"photo_url"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type providerLoginInput struct {
	Provider string `json:"provider" binding:"required"`
	IDToken  string `json:"id_token" binding:"required"`
}

type updateProfileInput struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	authUser, err := h.identity.SignUp(c.Request.Context(), input.Email, input.Password, input.Name, input.PhotoURL)
	if err != nil {
		if errors.Is(err, client.ErrEmailAlreadyInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": client.UserMessage(err)})
			return
		}
		authFailure(c, err)
		return
	}

	if _, err := h.profiles.Ensure(c.Request.Context(), authUser.UID, authUser.Name, authUser.Email, authUser.PhotoURL); err != nil {
		log.Printf("Error creating profile for new user %s: %v", authUser.UID, err)
	}

	// No session yet: the account must verify its email before signing in.
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created. Please check your inbox to verify your email.",
		"redirect": string(flow.PageVerifyEmail),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	authUser, err := h.identity.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, client.ErrEmailNotVerified) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    client.UserMessage(err),
				"redirect": string(flow.PageVerifyEmail),
			})
			return
		}
		if errors.Is(err, client.ErrInvalidCredential) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": client.UserMessage(err)})
			return
		}
		authFailure(c, err)
		return
	}

	h.openSession(c, authUser)
}

func (h *AuthHandler) LoginWithProvider(c *gin.Context) {
	var input providerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	authUser, err := h.identity.SignInWithProvider(c.Request.Context(), input.Provider, input.IDToken)
	if err != nil {
		if errors.Is(err, client.ErrAccountExistsOtherMethod) || errors.Is(err, client.ErrUnauthorizedDomain) {
			c.JSON(http.StatusConflict, gin.H{"error": client.UserMessage(err)})
			return
		}
		authFailure(c, err)
		return
	}

	h.openSession(c, authUser)
}

// openSession syncs the profile document and opens a session. The document
// store is authoritative for name and photo once it has a copy.
func (h *AuthHandler) openSession(c *gin.Context, authUser *client.AuthUser) {
	// Unverified password accounts never get a session, even when the
	// provider answered the sign-in itself. Federated providers vouch for
	// their emails.
	if !authUser.EmailVerified && (authUser.Provider == "" || authUser.Provider == "password") {
		c.JSON(http.StatusForbidden, gin.H{
			"error":    client.UserMessage(client.ErrEmailNotVerified),
			"redirect": string(flow.PageVerifyEmail),
		})
		return
	}

	user := models.User{
		ID:            authUser.UID,
		Name:          authUser.Name,
		Email:         authUser.Email,
		PhotoURL:      authUser.PhotoURL,
		Provider:      authUser.Provider,
		EmailVerified: authUser.EmailVerified,
	}

	profile, err := h.profiles.Ensure(c.Request.Context(), authUser.UID, authUser.Name, authUser.Email, authUser.PhotoURL)
	if err != nil {
		log.Printf("Error syncing profile for user %s: %v", authUser.UID, err)
	} else {
		user.Name = profile.Name
		user.Role = profile.Role
		if profile.PhotoURL != "" {
			user.PhotoURL = profile.PhotoURL
		}
	}

	favoriteStore := ""
	if fav, err := h.prefs.FavoriteStore(c.Request.Context(), user.ID); err != nil {
		log.Printf("Error reading favorite store for user %s: %v", user.ID, err)
	} else {
		favoriteStore = fav
	}

	s := h.sessions.Create(user)
	log.Printf("Session opened for user %s (%s)", user.ID, user.Email)

	c.JSON(http.StatusOK, gin.H{
		"token":          s.Token,
		"user":           user,
		"favorite_store": favoriteStore,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s, _ := currentSession(c)
	if err := h.identity.SignOut(c.Request.Context(), s.User.ID); err != nil {
		log.Printf("Error signing out user %s with identity provider: %v", s.User.ID, err)
	}
	h.sessions.Delete(s.Token)
	c.JSON(http.StatusOK, gin.H{"toast": "Successfully logged out."})
}

type passwordResetInput struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) SendPasswordReset(c *gin.Context) {
	var input passwordResetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.identity.SendPasswordReset(c.Request.Context(), input.Email); err != nil {
		authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If that email exists, a reset link is on its way."})
}

type resendVerificationInput struct {
	UID string `json:"uid" binding:"required"`
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var input resendVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.identity.SendVerificationEmail(c.Request.Context(), input.UID); err != nil {
		authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent."})
}

func (h *AuthHandler) Me(c *gin.Context) {
	s, _ := currentSession(c)
	s.Lock()
	user := s.User
	s.Unlock()
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Name == "" && input.PhotoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	s, _ := currentSession(c)

	if _, err := h.identity.UpdateProfile(c.Request.Context(), s.User.ID, input.Name, input.PhotoURL); err != nil {
		authFailure(c, err)
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), s.User.ID, input.Name, input.PhotoURL)
	if err != nil {
		log.Printf("Error updating profile document for user %s: %v", s.User.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile: " + err.Error()})
		return
	}

	s.Lock()
	s.User.Name = profile.Name
	if profile.PhotoURL != "" {
		s.User.PhotoURL = profile.PhotoURL
	}
	user := s.User
	s.Unlock()

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	s, _ := currentSession(c)

	if err := h.identity.DeleteAccount(c.Request.Context(), s.User.ID); err != nil {
		authFailure(c, err)
		return
	}
	if err := h.profiles.Delete(c.Request.Context(), s.User.ID); err != nil {
		log.Printf("Error deleting profile document for user %s: %v", s.User.ID, err)
	}
	h.sessions.DeleteByUser(s.User.ID)

	c.JSON(http.StatusOK, gin.H{"toast": "Account deleted."})
}

func (h *AuthHandler) GetFavoriteStore(c *gin.Context) {
	s, _ := currentSession(c)

	storeID, err := h.prefs.FavoriteStore(c.Request.Context(), s.User.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read favorite store: " + err.Error()})
		return
	}

	resp := gin.H{"store_id": storeID}
	if loc, ok := catalog.LocationByID(storeID); ok {
		resp["store"] = loc
	}
	c.JSON(http.StatusOK, resp)
}

type favoriteStoreInput struct {
	StoreID string `json:"store_id" binding:"required"`
}

func (h *AuthHandler) SetFavoriteStore(c *gin.Context) {
	var input favoriteStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if _, ok := catalog.LocationByID(input.StoreID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found: " + input.StoreID})
		return
	}

	s, _ := currentSession(c)
	if err := h.prefs.SetFavoriteStore(c.Request.Context(), s.User.ID, input.StoreID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite store: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store_id": input.StoreID,
		"toast":    "Store set as your favorite!",
	})
}

// authFailure maps classified identity errors to responses; anything
// unclassified is a bad-gateway with a generic retry prompt.
func authFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrRequiresRecentLogin):
		c.JSON(http.StatusForbidden, gin.H{"error": client.UserMessage(err)})
	case errors.Is(err, client.ErrUnauthorizedDomain):
		c.JSON(http.StatusForbidden, gin.H{"error": client.UserMessage(err)})
	case errors.Is(err, client.ErrIdentityUnavailable):
		log.Printf("Identity provider failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Authentication is temporarily unavailable. Please try again."})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": client.UserMessage(err)})
	}
}
