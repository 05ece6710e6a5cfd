package wizard

import "errors"

// Phase identifies one of the eight fixed steps of the evaluation wizard.
// Transitions are linear: every phase moves forward or backward by exactly
// one according to the transition table below. Skip behavior ("this program
// has no specialties") is never the sequencer's job — a phase with nothing
// to display advances itself.
type Phase string

const (
	PhaseConsent         Phase = "CONSENT"
	PhaseRegistration    Phase = "REGISTRATION"
	PhaseProgram         Phase = "PROGRAM"
	PhaseCoreRating      Phase = "CORE_RATING"
	PhaseSpecialty       Phase = "SPECIALTY"
	PhaseSpecialtyRating Phase = "SPECIALTY_RATING"
	PhaseSharedRating    Phase = "SHARED_RATING"
	PhaseConfirmation    Phase = "CONFIRMATION"
)

// transition is the explicit allowed-transition table. An empty Phase
// means the move is not allowed from there.
type transition struct {
	Next Phase
	Prev Phase
}

var transitions = map[Phase]transition{
	PhaseConsent:         {Next: PhaseRegistration},
	PhaseRegistration:    {Next: PhaseProgram, Prev: PhaseConsent},
	PhaseProgram:         {Next: PhaseCoreRating, Prev: PhaseRegistration},
	PhaseCoreRating:      {Next: PhaseSpecialty, Prev: PhaseProgram},
	PhaseSpecialty:       {Next: PhaseSpecialtyRating, Prev: PhaseCoreRating},
	PhaseSpecialtyRating: {Next: PhaseSharedRating, Prev: PhaseSpecialty},
	PhaseSharedRating:    {Next: PhaseConfirmation, Prev: PhaseSpecialtyRating},
	// Confirmation is terminal: it is exited only by a full session reset.
	PhaseConfirmation: {Prev: PhaseSharedRating},
}

// phaseOrder lists the phases in wizard order, for progress display.
var phaseOrder = []Phase{
	PhaseConsent,
	PhaseRegistration,
	PhaseProgram,
	PhaseCoreRating,
	PhaseSpecialty,
	PhaseSpecialtyRating,
	PhaseSharedRating,
	PhaseConfirmation,
}

// ErrNoTransition is returned when Advance/Retreat is called at a boundary.
var ErrNoTransition = errors.New("no transition from current phase")

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	_, ok := transitions[p]
	return ok
}

// Index returns the zero-based position of p in the wizard, or -1.
func (p Phase) Index() int {
	for i, ph := range phaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

// Next returns the phase after p according to the transition table.
func (p Phase) Next() (Phase, error) {
	t, ok := transitions[p]
	if !ok || t.Next == "" {
		return p, ErrNoTransition
	}
	return t.Next, nil
}

// Prev returns the phase before p according to the transition table.
func (p Phase) Prev() (Phase, error) {
	t, ok := transitions[p]
	if !ok || t.Prev == "" {
		return p, ErrNoTransition
	}
	return t.Prev, nil
}

// IsRating reports whether p is one of the three instructor-rating phases.
func (p Phase) IsRating() bool {
	return p == PhaseCoreRating || p == PhaseSpecialtyRating || p == PhaseSharedRating
}

// TotalPhases is the fixed length of the wizard.
func TotalPhases() int {
	return len(phaseOrder)
}
