package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseOrderIsLinear(t *testing.T) {
	assert.Equal(t, 8, TotalPhases())

	p := PhaseConsent
	visited := []Phase{p}
	for {
		next, err := p.Next()
		if err != nil {
			break
		}
		visited = append(visited, next)
		p = next
	}

	require.Equal(t, phaseOrder, visited)
	assert.Equal(t, PhaseConfirmation, p)
}

func TestPhaseBoundariesClamp(t *testing.T) {
	_, err := PhaseConsent.Prev()
	assert.ErrorIs(t, err, ErrNoTransition)

	_, err = PhaseConfirmation.Next()
	assert.ErrorIs(t, err, ErrNoTransition)
}

func TestSessionAdvanceRetreat(t *testing.T) {
	s := NewSession("tok", "sub")
	require.Equal(t, PhaseConsent, s.Phase)
	v := s.Version

	require.NoError(t, s.Advance())
	assert.Equal(t, PhaseRegistration, s.Phase)
	assert.Greater(t, s.Version, v)

	require.NoError(t, s.Retreat())
	assert.Equal(t, PhaseConsent, s.Phase)

	// Retreating past the first phase is rejected and leaves state alone.
	assert.ErrorIs(t, s.Retreat(), ErrNoTransition)
	assert.Equal(t, PhaseConsent, s.Phase)
}

func TestAdvanceClearsPhaseLocalSubject(t *testing.T) {
	s := NewSession("tok", "sub")
	s.Phase = PhaseCoreRating
	s.SetSubject("Fundamentos")

	require.NoError(t, s.Advance())
	assert.Empty(t, s.Subject)
}

func TestRatingPhases(t *testing.T) {
	assert.True(t, PhaseCoreRating.IsRating())
	assert.True(t, PhaseSpecialtyRating.IsRating())
	assert.True(t, PhaseSharedRating.IsRating())
	assert.False(t, PhaseConfirmation.IsRating())
	assert.False(t, PhaseProgram.IsRating())
}
