// SPDX-License-Identifier: Apache-2.0

// Package guard decides whether a screen may be shown for the current
// session state. It is pure routing policy: no I/O, no session mutation.
package guard

import "github.com/houseiq/houseiq-client/internal/service"

// Requirement classifies a screen. Public screens (login, register) are for
// anonymous users only; Protected screens require an authenticated session.
type Requirement int

const (
	Public Requirement = iota
	Protected
)

func (r Requirement) String() string {
	if r == Protected {
		return "protected"
	}
	return "public"
}

// Decision is the guard's verdict for a screen request.
type Decision int

const (
	// Render shows the requested screen.
	Render Decision = iota
	// ShowLoading holds the request until the session state is known.
	ShowLoading
	// RedirectToLogin bounces an anonymous user off a protected screen.
	RedirectToLogin
	// RedirectToDashboard bounces an authenticated user off a public screen.
	RedirectToDashboard
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "show-loading"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDashboard:
		return "redirect-to-dashboard"
	default:
		return "render"
	}
}

// Decide resolves the routing verdict for a screen with the given requirement
// under the given session state. An unknown state always yields ShowLoading:
// no screen renders and no redirect fires before hydration settles.
func Decide(state service.State, req Requirement) Decision {
	if state == service.StateUnknown {
		return ShowLoading
	}

	switch req {
	case Protected:
		if state == service.StateAuthenticated {
			return Render
		}
		return RedirectToLogin
	default:
		if state == service.StateAuthenticated {
			return RedirectToDashboard
		}
		return Render
	}
}
