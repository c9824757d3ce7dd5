package application

import (
	"context"

	"github.com/bnema/storefront-cli/internal/domain"
)

// Requirement is what a route needs from the session.
type Requirement struct {
	Authenticated bool
	Role          domain.Role
}

var (
	RequireNone          = Requirement{}
	RequireAuthenticated = Requirement{Authenticated: true}
	RequireAdmin         = Requirement{Authenticated: true, Role: domain.RoleAdmin}
)

type Decision int

const (
	DecisionPending Decision = iota
	DecisionAllow
	DecisionRedirectLogin
	DecisionAccessDenied
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionAccessDenied:
		return "access-denied"
	default:
		return "unknown"
	}
}

// Authorize decides without blocking. It answers DecisionPending while the
// session is not ready.
func (s *Session) Authorize(req Requirement) Decision {
	select {
	case <-s.ready:
	default:
		return DecisionPending
	}

	return decide(req, s.State())
}

// AuthorizeWait waits for the session to be ready, then decides.
func (s *Session) AuthorizeWait(ctx context.Context, req Requirement) (Decision, error) {
	if err := s.Wait(ctx); err != nil {
		return DecisionPending, err
	}
	return decide(req, s.State()), nil
}

func decide(req Requirement, state SessionState) Decision {
	needsIdentity := req.Authenticated || req.Role != ""
	if !needsIdentity {
		return DecisionAllow
	}
	if !state.Authenticated() {
		return DecisionRedirectLogin
	}
	if !state.Identity.HasRole(req.Role) {
		return DecisionAccessDenied
	}
	return DecisionAllow
}
