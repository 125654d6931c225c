package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/houseiq/houseiq-client/internal/service"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		state service.State
		req   Requirement
		want  Decision
	}{
		{"unknown state holds public screens", service.StateUnknown, Public, ShowLoading},
		{"unknown state holds protected screens", service.StateUnknown, Protected, ShowLoading},
		{"anonymous renders public screens", service.StateAnonymous, Public, Render},
		{"anonymous bounced off protected screens", service.StateAnonymous, Protected, RedirectToLogin},
		{"authenticated bounced off public screens", service.StateAuthenticated, Public, RedirectToDashboard},
		{"authenticated renders protected screens", service.StateAuthenticated, Protected, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.req))
		})
	}
}

func TestDecide_NeverRedirectsBeforeHydration(t *testing.T) {
	// A premature redirect-to-login during startup is exactly the flicker the
	// loading verdict exists to prevent.
	for _, req := range []Requirement{Public, Protected} {
		assert.Equal(t, ShowLoading, Decide(service.StateUnknown, req), "requirement %v", req)
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "protected", Protected.String())
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "redirect-to-login", RedirectToLogin.String())
	assert.Equal(t, "render", Render.String())
}
