package folio

import (
	"context"

	"github.com/folio-sh/folio/gateway"
)

// View is the top-level screen selector. It depends only on the URL fragment
// and the session authentication flag, never on content state.
type View string

const (
	ViewPortfolio View = "portfolio"
	ViewLogin     View = "login"
	ViewAdmin     View = "admin"
)

// AdminFragment is the only non-root route. Any other fragment, including the
// empty one, selects the public site.
const AdminFragment = "#/admin"

// RootFragment is what logout navigates back to.
const RootFragment = "#"

// SessionFlag is the session-scoped authentication marker. It lives for the
// browsing session: surviving reloads, cleared when the session ends.
type SessionFlag interface {
	Authenticated() bool
	SetAuthenticated(bool)
}

// MemoryFlag is the in-process SessionFlag used by tests and the local
// variant. The cookie session used by the HTTP surface satisfies the same
// contract through sessionFlag.
type MemoryFlag struct{ authed bool }

func (m *MemoryFlag) Authenticated() bool     { return m.authed }
func (m *MemoryFlag) SetAuthenticated(v bool) { m.authed = v }

// StoreFlag keeps the auth flag in the local store, for embedded single-user
// setups that want the admin session to survive restarts. Store errors read
// as unauthenticated.
type StoreFlag struct {
	store *gateway.LocalGateway
}

func NewStoreFlag(store *gateway.LocalGateway) *StoreFlag {
	return &StoreFlag{store: store}
}

func (s *StoreFlag) Authenticated() bool {
	v, err := s.store.GetValue(context.Background(), gateway.KeyAuthFlag)
	return err == nil && v == "1"
}

func (s *StoreFlag) SetAuthenticated(v bool) {
	if v {
		_ = s.store.SetValue(context.Background(), gateway.KeyAuthFlag, "1")
		return
	}
	_ = s.store.DeleteValue(context.Background(), gateway.KeyAuthFlag)
}

// ViewState is the view/auth state machine: three states (portfolio, login,
// admin), driven by fragment navigation and login/logout events.
type ViewState struct {
	verifier CredentialVerifier
	session  SessionFlag

	view     View
	fragment string
	loginErr string
}

// NewViewState applies the startup rule: the admin screen shows only when the
// fragment is the admin route AND the session flag is already set. A bare
// first visit to the admin fragment lands on the portfolio, not the login
// screen.
func NewViewState(verifier CredentialVerifier, session SessionFlag, fragment string) *ViewState {
	v := &ViewState{verifier: verifier, session: session, fragment: fragment}
	if fragment == AdminFragment && session.Authenticated() {
		v.view = ViewAdmin
	} else {
		v.view = ViewPortfolio
	}
	return v
}

// View returns the current screen.
func (v *ViewState) View() View { return v.view }

// Fragment returns the current URL fragment.
func (v *ViewState) Fragment() string { return v.fragment }

// LoginError returns the message shown on the login screen after a failed
// attempt, or "".
func (v *ViewState) LoginError() string { return v.loginErr }

// HandleFragment processes a navigation event after startup. The admin
// fragment resolves to login when unauthenticated and admin otherwise; every
// other fragment resolves to the portfolio.
func (v *ViewState) HandleFragment(fragment string) {
	v.fragment = fragment
	if fragment == AdminFragment {
		if v.session.Authenticated() {
			v.view = ViewAdmin
		} else {
			v.view = ViewLogin
		}
		return
	}
	v.view = ViewPortfolio
}

// RequestLogin shows the login screen and moves the fragment to the admin
// route so a reload preserves intent.
func (v *ViewState) RequestLogin() {
	v.view = ViewLogin
	v.fragment = AdminFragment
}

// Login verifies the credentials. Success sets the session flag and enters
// the admin view; failure stays on the login screen with an error message.
// There is no lockout here; the HTTP surface rate-limits attempts.
func (v *ViewState) Login(username, password string) bool {
	if !v.verifier.Verify(username, password) {
		v.loginErr = "Invalid username or password."
		return false
	}
	v.loginErr = ""
	v.session.SetAuthenticated(true)
	v.view = ViewAdmin
	v.fragment = AdminFragment
	return true
}

// Logout clears the session flag and returns to the portfolio.
func (v *ViewState) Logout() {
	v.session.SetAuthenticated(false)
	v.view = ViewPortfolio
	v.fragment = RootFragment
}
