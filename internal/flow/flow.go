// Package flow is the page router: a table of pages and guarded transitions.
// Each guard and its side effect (redirect target plus toast) is stated once
// here, so navigation and the mutation handlers agree on who may go where.
package flow

import "errors"

type Page string

const (
	PageHome           Page = "home"
	PageMenu           Page = "menu"
	PageOrderSetup     Page = "order-setup"
	PageCheckout       Page = "checkout"
	PageTracking       Page = "tracking"
	PageLocations      Page = "locations"
	PageAbout          Page = "about"
	PageCareers        Page = "careers"
	PageGiftCards      Page = "gift-cards"
	PageBlog           Page = "blog"
	PageBlogPost       Page = "blog-post"
	PageContact        Page = "contact"
	PageDashboard      Page = "dashboard"
	PageLogin          Page = "login"
	PageSignup         Page = "signup"
	PageForgotPassword Page = "forgot-password"
	PageResetPassword  Page = "reset-password"
	PageCatering       Page = "catering"
	PageVerifyEmail    Page = "verify-email"
)

var ErrUnknownPage = errors.New("unknown page")

const (
	ToastLoginRequired  = "Please Login to start ordering!"
	ToastOrderInfoFirst = "Tell us where to send your pizza first!"
)

// Context is the session state a guard may consult.
type Context struct {
	SignedIn       bool
	HasOrderInfo   bool
	HasActiveOrder bool
}

// Result is where a navigation attempt actually landed.
type Result struct {
	Page       Page
	Toast      string
	Redirected bool
}

type guard func(Context) (Page, string)

// transitions maps each page to its entry guard. Pages absent from the map
// are freely reachable.
var transitions = map[Page]guard{
	PageDashboard: requireSignedIn,
	PageCheckout: func(ctx Context) (Page, string) {
		if !ctx.SignedIn {
			return PageLogin, ToastLoginRequired
		}
		if !ctx.HasOrderInfo {
			return PageOrderSetup, ToastOrderInfoFirst
		}
		return "", ""
	},
	PageTracking: func(ctx Context) (Page, string) {
		if !ctx.SignedIn {
			return PageLogin, ToastLoginRequired
		}
		return "", ""
	},
	PageLogin:          requireSignedOut,
	PageSignup:         requireSignedOut,
	PageForgotPassword: requireSignedOut,
	PageResetPassword:  requireSignedOut,
	PageVerifyEmail:    requireSignedOut,
}

var pages = map[Page]bool{
	PageHome: true, PageMenu: true, PageOrderSetup: true, PageCheckout: true,
	PageTracking: true, PageLocations: true, PageAbout: true, PageCareers: true,
	PageGiftCards: true, PageBlog: true, PageBlogPost: true, PageContact: true,
	PageDashboard: true, PageLogin: true, PageSignup: true,
	PageForgotPassword: true, PageResetPassword: true, PageCatering: true,
	PageVerifyEmail: true,
}

func requireSignedIn(ctx Context) (Page, string) {
	if !ctx.SignedIn {
		return PageLogin, ToastLoginRequired
	}
	return "", ""
}

func requireSignedOut(ctx Context) (Page, string) {
	if ctx.SignedIn {
		return PageHome, ""
	}
	return "", ""
}

// Navigate resolves a transition to the requested page, applying its entry
// guard. The guard may redirect elsewhere and attach a toast.
func Navigate(to Page, ctx Context) (Result, error) {
	if !pages[to] {
		return Result{}, ErrUnknownPage
	}
	if g, ok := transitions[to]; ok {
		if redirect, toast := g(ctx); redirect != "" {
			return Result{Page: redirect, Toast: toast, Redirected: true}, nil
		}
	}
	return Result{Page: to}, nil
}

// StartOrder is the "Order Now" entry point: login first, then order setup if
// fulfillment details are missing, then the menu.
func StartOrder(ctx Context) Result {
	if !ctx.SignedIn {
		return Result{Page: PageLogin, Toast: ToastLoginRequired, Redirected: true}
	}
	if !ctx.HasOrderInfo {
		return Result{Page: PageOrderSetup, Redirected: true}
	}
	return Result{Page: PageMenu}
}
