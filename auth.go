package vidsage

import (
	"context"
	"sync"

	"github.com/vidsage/vidsage-go/internal/api"
	"github.com/vidsage/vidsage-go/internal/types"
)

// Auth is the session state holder. It owns the current user record: the
// four operations below are its only write surface, every other component
// just reads the derived accessors.
//
// Operations are serialized; Busy reports whether one is in flight, the
// advisory equivalent of the web UI's loading flag.
type Auth struct {
	c *Client

	opMu sync.Mutex // serializes the four mutating operations

	mu            sync.RWMutex // guards the fields below
	busy          bool
	user          *types.User
	authenticated bool

	// OnNavigate, when set, receives the route the UI should move to after
	// a state change that forces navigation (logout redirects home).
	OnNavigate func(route string)
}

// NewAuth builds the session holder. Call CheckAuth once at startup to seed
// the state from the server's session cookie.
func (c *Client) NewAuth() *Auth {
	return &Auth{c: c}
}

// User returns a copy of the current user record, or nil when signed out.
func (a *Auth) User() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// IsAuthenticated reports whether a user record is present.
func (a *Auth) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// IsAdmin is derived on every read, never stored, so it cannot diverge from
// the underlying user record.
func (a *Auth) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated && a.user != nil && a.user.IsAdmin
}

// Busy reports whether one of the four operations is in flight.
func (a *Auth) Busy() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.busy
}

// CheckAuth asks the server who the session cookie belongs to and resets
// local state to match. It never returns an error: any failure, network or
// otherwise, is treated identically to "not authenticated". The result is
// the new authentication state.
func (a *Auth) CheckAuth(ctx context.Context) bool {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	a.setBusy(true)
	defer a.setBusy(false)

	resp, err := api.Me(ctx, a.c.caller)
	if err != nil || resp.User == nil {
		a.clear()
		return false
	}
	a.store(resp.User)
	return true
}

// Login posts credentials. On a response carrying a user record it stores
// the session and returns true. A response without a user means rejected
// credentials: the server's message (or a generic one) is surfaced and
// false is returned. Network-level failures return false silently - the
// transport has already notified.
func (a *Auth) Login(ctx context.Context, email, password string) bool {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	a.setBusy(true)
	defer a.setBusy(false)

	resp, err := api.Login(ctx, a.c.caller, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		return false
	}
	if resp.User == nil {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed"
		}
		a.c.notifier.Error(msg)
		return false
	}
	a.store(resp.User)
	a.c.notifier.Success("Login successful")
	return true
}

// Signup is symmetric to Login but creates the account first.
func (a *Auth) Signup(ctx context.Context, username, email, password string) bool {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	a.setBusy(true)
	defer a.setBusy(false)

	resp, err := api.Signup(ctx, a.c.caller, types.SignupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return false
	}
	if resp.User == nil {
		msg := resp.Message
		if msg == "" {
			msg = "Signup failed"
		}
		a.c.notifier.Error(msg)
		return false
	}
	a.store(resp.User)
	a.c.notifier.Success("Signup successful")
	return true
}

// Logout calls the logout endpoint and clears local session state
// unconditionally, even when the server round trip fails. The client must
// never stay stuck authenticated; a dangling server session only means the
// cookie outlives the UI state.
func (a *Auth) Logout(ctx context.Context) {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	a.setBusy(true)
	defer a.setBusy(false)

	defer func() {
		a.clear()
		a.c.notifier.Success("Logged out successfully")
		if a.OnNavigate != nil {
			a.OnNavigate("/")
		}
	}()

	// Failure is already surfaced by the transport.
	_ = api.Logout(ctx, a.c.caller)
}

func (a *Auth) setBusy(v bool) {
	a.mu.Lock()
	a.busy = v
	a.mu.Unlock()
}

func (a *Auth) store(u *types.User) {
	a.mu.Lock()
	cp := *u
	a.user = &cp
	a.authenticated = true
	a.mu.Unlock()
}

func (a *Auth) clear() {
	a.mu.Lock()
	a.user = nil
	a.authenticated = false
	a.mu.Unlock()
}
