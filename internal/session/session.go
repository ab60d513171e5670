// Package session is the single holder of per-user application state: the
// signed-in user, the cart ledger, order setup info, the current page and the
// active order. Carts live and die with their session; nothing here survives
// a restart.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Ebelene1994/Presto-Pizza/cart"
	"github.com/Ebelene1994/Presto-Pizza/internal/flow"
	"github.com/Ebelene1994/Presto-Pizza/internal/payment"
	"github.com/Ebelene1994/Presto-Pizza/models"
)

// Session is mutated only while holding its mutex; every mutation runs to
// completion before the lock is released, so there is exactly one mutator at
// a time.
type Session struct {
	sync.Mutex

	Token string
	User  models.User
	Cart  *cart.Ledger

	OrderInfo   *models.OrderInfo
	Page        flow.Page
	ActiveOrder *models.Order

	PaymentStatus payment.Status
	PaymentResult payment.Result
}

// FlowContext snapshots the state the page router's guards consult. Callers
// hold the session lock.
func (s *Session) FlowContext() flow.Context {
	return flow.Context{
		SignedIn:       s.User.ID != "",
		HasOrderInfo:   s.OrderInfo != nil,
		HasActiveOrder: s.ActiveOrder != nil,
	}
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create opens a session for a signed-in user with an empty cart.
func (m *Manager) Create(user models.User) *Session {
	s := &Session{
		Token:         uuid.NewString(),
		User:          user,
		Cart:          cart.New(),
		Page:          flow.PageHome,
		PaymentStatus: payment.StatusIdle,
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	return s, ok
}

// Delete ends a session; the cart is gone with it.
func (m *Manager) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// DeleteByUser ends every session belonging to a user, e.g. after account
// deletion.
func (m *Manager) DeleteByUser(userID string) {
	m.mu.Lock()
	for token, s := range m.sessions {
		if s.User.ID == userID {
			delete(m.sessions, token)
		}
	}
	m.mu.Unlock()
}
