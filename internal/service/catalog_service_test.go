package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveProgramsOrdering(t *testing.T) {
	ctx := context.Background()

	programs := &fakeProgramRepo{programs: []model.Program{
		{ID: 1, Name: "Ética Aplicada", Active: true},                          // No orden: sorts last
		{ID: 2, Name: "Neuropsicología", Active: true, DisplayOrder: intPtr(2)},
		{ID: 3, Name: "Psicoterapia", Active: true, DisplayOrder: intPtr(1)},
		{ID: 4, Name: "Inactiva", Active: false, DisplayOrder: intPtr(0)},
		{ID: 5, Name: "Estadística Clínica", Active: true},
	}}
	svc := NewCatalogService(programs, &fakeSpecialtyRepo{}, zerolog.Nop())

	got, err := svc.ListActivePrograms(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)

	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	// Ordered programs first by orden, then the unordered ones collated in
	// Spanish (Estadística before Ética).
	assert.Equal(t, []string{"Psicoterapia", "Neuropsicología", "Estadística Clínica", "Ética Aplicada"}, names)
}

func TestListActiveSpecialtiesCollation(t *testing.T) {
	ctx := context.Background()

	specs := &fakeSpecialtyRepo{specialties: []model.Specialty{
		{ID: 1, Name: "Psicopatología", ProgramID: 1, Active: true},
		{ID: 2, Name: "Ética Clínica", ProgramID: 1, Active: true},
		{ID: 3, Name: "Evaluación Infantil", ProgramID: 1, Active: true},
		{ID: 4, Name: "De otro programa", ProgramID: 2, Active: true},
		{ID: 5, Name: "Inactiva", ProgramID: 1, Active: false},
	}}
	svc := NewCatalogService(&fakeProgramRepo{}, specs, zerolog.Nop())

	got, err := svc.ListActiveSpecialties(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ética Clínica", got[0].Name)
	assert.Equal(t, "Evaluación Infantil", got[1].Name)
	assert.Equal(t, "Psicopatología", got[2].Name)
}
