// Package client holds the outbound HTTP clients for the managed services
// this app delegates to: the identity provider and the form relay.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Classified identity failures. Anything the provider reports that does not
// map to one of these surfaces as ErrIdentityUnavailable.
var (
	ErrInvalidCredential        = errors.New("invalid email or password")
	ErrEmailNotVerified         = errors.New("email address not verified")
	ErrEmailAlreadyInUse        = errors.New("email already registered")
	ErrUnauthorizedDomain       = errors.New("domain not authorized for sign-in")
	ErrAccountExistsOtherMethod = errors.New("account exists with a different sign-in method")
	ErrRequiresRecentLogin      = errors.New("operation requires a recent login")
	ErrIdentityUnavailable      = errors.New("identity service unavailable or returned an error")
)

// UserMessage maps a classified identity failure to the message shown to the
// user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredential):
		return "Invalid email or password. Please try again."
	case errors.Is(err, ErrEmailNotVerified):
		return "Please verify your email. We just sent you a new verification link."
	case errors.Is(err, ErrEmailAlreadyInUse):
		return "This email is already registered. Please sign in instead."
	case errors.Is(err, ErrUnauthorizedDomain):
		return "This domain is not authorized for sign-in."
	case errors.Is(err, ErrAccountExistsOtherMethod):
		return "An account already exists with this email using a different login method."
	case errors.Is(err, ErrRequiresRecentLogin):
		return "For security, please log out and log back in to perform this action."
	default:
		return "An unexpected authentication error occurred."
	}
}

// AuthUser is the provider's view of an account.
type AuthUser struct {
	UID           string `json:"uid"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photo_url,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Provider      string `json:"provider,omitempty"`
}

type IdentityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignIn exchanges an email/password credential for the account. Providers
// that refuse unverified accounts answer EMAIL_NOT_VERIFIED after re-sending
// the verification mail.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*AuthUser, error) {
	return c.postAccount(ctx, "signInWithPassword", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SignInWithProvider completes a federated sign-in with the token the
// provider's widget produced.
func (c *IdentityClient) SignInWithProvider(ctx context.Context, provider, idToken string) (*AuthUser, error) {
	return c.postAccount(ctx, "signInWithIdp", map[string]string{
		"provider": provider,
		"id_token": idToken,
	})
}

// SignUp creates the account and triggers the verification email. The
// account stays unverified until the link is followed.
func (c *IdentityClient) SignUp(ctx context.Context, email, password, name, photoURL string) (*AuthUser, error) {
	return c.postAccount(ctx, "signUp", map[string]string{
		"email":     email,
		"password":  password,
		"name":      name,
		"photo_url": photoURL,
	})
}

func (c *IdentityClient) SendVerificationEmail(ctx context.Context, uid string) error {
	_, err := c.postAccount(ctx, "sendVerification", map[string]string{"uid": uid})
	return err
}

func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	_, err := c.postAccount(ctx, "sendPasswordReset", map[string]string{"email": email})
	return err
}

func (c *IdentityClient) SignOut(ctx context.Context, uid string) error {
	_, err := c.postAccount(ctx, "signOut", map[string]string{"uid": uid})
	return err
}

func (c *IdentityClient) UpdateProfile(ctx context.Context, uid, name, photoURL string) (*AuthUser, error) {
	return c.postAccount(ctx, "update", map[string]string{
		"uid":       uid,
		"name":      name,
		"photo_url": photoURL,
	})
}

func (c *IdentityClient) DeleteAccount(ctx context.Context, uid string) error {
	_, err := c.postAccount(ctx, "delete", map[string]string{"uid": uid})
	return err
}

type identityError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *IdentityClient) postAccount(ctx context.Context, action string, body map[string]string) (*AuthUser, error) {
	url := fmt.Sprintf("%s/v1/accounts:%s?key=%s", c.baseURL, action, c.apiKey)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode identity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request to identity service: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("IdentityClient: Error calling accounts:%s: %v", action, err)
		return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var ie identityError
		if err := json.NewDecoder(resp.Body).Decode(&ie); err != nil {
			log.Printf("IdentityClient: Non-JSON error (status %d) from accounts:%s", resp.StatusCode, action)
			return nil, fmt.Errorf("%w: status code %d", ErrIdentityUnavailable, resp.StatusCode)
		}
		log.Printf("IdentityClient: accounts:%s failed: Code=%s, Msg=%s", action, ie.Error.Code, ie.Error.Message)
		return nil, classify(ie.Error.Code, resp.StatusCode)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity service response: %w", err)
	}
	return &user, nil
}

func classify(code string, status int) error {
	switch code {
	case "INVALID_CREDENTIAL", "INVALID_PASSWORD", "EMAIL_NOT_FOUND", "USER_NOT_FOUND":
		return ErrInvalidCredential
	case "EMAIL_NOT_VERIFIED":
		return ErrEmailNotVerified
	case "EMAIL_EXISTS":
		return ErrEmailAlreadyInUse
	case "UNAUTHORIZED_DOMAIN":
		return ErrUnauthorizedDomain
	case "ACCOUNT_EXISTS_WITH_DIFFERENT_CREDENTIAL":
		return ErrAccountExistsOtherMethod
	case "REQUIRES_RECENT_LOGIN":
		return ErrRequiresRecentLogin
	default:
		return fmt.Errorf("%w: status code %d (%s)", ErrIdentityUnavailable, status, code)
	}
}
