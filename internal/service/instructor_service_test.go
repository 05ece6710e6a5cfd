package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructorNonCoreRequiresSpecialty(t *testing.T) {
	ctx := context.Background()
	repo := &fakeInstructorRepo{}
	svc := NewInstructorService(repo, zerolog.Nop())

	err := svc.Create(ctx, &model.Instructor{
		FullName:    "Dr. Ortega",
		Subject:     "Psicopatología",
		ProgramID:   1,
		CoreSubject: false,
	})
	assert.ErrorIs(t, err, ErrSpecialtyRequired)
	assert.Empty(t, repo.created)

	err = svc.Create(ctx, &model.Instructor{
		FullName:    "Dr. Ortega",
		Subject:     "Psicopatología",
		ProgramID:   1,
		CoreSubject: false,
		SpecialtyID: intPtr(10),
	})
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestInstructorCoreNeedsNoSpecialty(t *testing.T) {
	ctx := context.Background()
	repo := &fakeInstructorRepo{}
	svc := NewInstructorService(repo, zerolog.Nop())

	err := svc.Create(ctx, &model.Instructor{
		FullName:    "Dra. Rivas",
		Subject:     "Metodología",
		ProgramID:   1,
		CoreSubject: true,
	})
	require.NoError(t, err)

	err = svc.Update(ctx, &model.Instructor{
		ID:          1,
		FullName:    "Dra. Rivas",
		Subject:     "Metodología",
		ProgramID:   1,
		CoreSubject: false,
	})
	assert.ErrorIs(t, err, ErrSpecialtyRequired)
}
