package wizard

import (
	"testing"

	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRatings(v int) map[int]int {
	m := make(map[int]int, NumQuestions)
	for q := 1; q <= NumQuestions; q++ {
		m[q] = v
	}
	return m
}

func TestValidateRatingsComplete(t *testing.T) {
	assert.NoError(t, ValidateRatings(fullRatings(8)))
}

func TestValidateRatingsMissingQuestion(t *testing.T) {
	m := fullRatings(8)
	delete(m, 11)
	assert.ErrorIs(t, ValidateRatings(m), ErrIncompleteRatings)
}

func TestValidateRatingsOutOfRange(t *testing.T) {
	m := fullRatings(8)
	m[4] = 11
	assert.ErrorIs(t, ValidateRatings(m), ErrRatingOutOfRange)

	m = fullRatings(8)
	m[4] = -1
	assert.ErrorIs(t, ValidateRatings(m), ErrRatingOutOfRange)

	m = fullRatings(8)
	m[18] = 5
	assert.ErrorIs(t, ValidateRatings(m), ErrRatingOutOfRange)
}

func TestValidateCaptureSingleCandidateImpliesPick(t *testing.T) {
	candidates := []model.Instructor{{ID: 4, FullName: "Dr. A"}}

	chosen, err := ValidateCapture(candidates, nil, fullRatings(9))
	require.NoError(t, err)
	assert.Equal(t, 4, chosen.ID)
}

func TestValidateCaptureRequiresExplicitPickForMultiple(t *testing.T) {
	candidates := []model.Instructor{{ID: 4}, {ID: 5}}

	_, err := ValidateCapture(candidates, nil, fullRatings(9))
	assert.ErrorIs(t, err, ErrInstructorNotSelected)

	id := 5
	chosen, err := ValidateCapture(candidates, &id, fullRatings(9))
	require.NoError(t, err)
	assert.Equal(t, 5, chosen.ID)
}

func TestValidateCaptureRejectsNonCandidate(t *testing.T) {
	candidates := []model.Instructor{{ID: 4}}
	id := 99
	_, err := ValidateCapture(candidates, &id, fullRatings(9))
	assert.ErrorIs(t, err, ErrInstructorNotCandidate)
}

func TestValidateCaptureDoesNotAcceptIncompleteRatings(t *testing.T) {
	candidates := []model.Instructor{{ID: 4}}
	m := fullRatings(9)
	delete(m, 17)
	_, err := ValidateCapture(candidates, nil, m)
	assert.ErrorIs(t, err, ErrIncompleteRatings)
}

func TestSessionAccumulation(t *testing.T) {
	s := NewSession("tok", "sub")
	s.Phase = PhaseCoreRating
	s.SetSubject("Fundamentos")

	s.AddEvaluation(model.Instructor{ID: 1, FullName: "Dr. A"}, fullRatings(10), "excelente curso")
	require.Len(t, s.Evaluations, 1)
	assert.Empty(t, s.Subject, "phase-local state must clear after capture")
	assert.Equal(t, "Dr. A", s.Evaluations[0].Instructor.FullName)
}

func TestBandBoundaries(t *testing.T) {
	assert.Equal(t, BandUnsatisfactory, BandFor(6))
	assert.Equal(t, BandRegular, BandFor(7))
	assert.Equal(t, BandRegular, BandFor(8.5))
	assert.Equal(t, BandExcellent, BandFor(9))
	assert.Equal(t, BandUnsatisfactory, BandFor(0))
}

func TestAverage(t *testing.T) {
	assert.InDelta(t, 7.0, Average([]int{7, 7, 7}), 1e-9)
	assert.Zero(t, Average(nil))
}

func TestQuestionSetIsFixed(t *testing.T) {
	assert.Len(t, Questions, NumQuestions)
	for i, q := range Questions {
		assert.NotEmpty(t, q, "reactivo %d", i+1)
	}
}
