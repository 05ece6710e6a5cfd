package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

// In-memory repository fakes. Only the methods the services under test
// exercise have real behavior; the rest return zero values.

type fakeProgramRepo struct {
	programs []model.Program
}

func (f *fakeProgramRepo) GetAll(ctx context.Context) ([]model.Program, error) {
	return f.programs, nil
}

func (f *fakeProgramRepo) ListActive(ctx context.Context) ([]model.Program, error) {
	var out []model.Program
	for _, p := range f.programs {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramRepo) GetByID(ctx context.Context, id int) (*model.Program, error) {
	for i := range f.programs {
		if f.programs[i].ID == id {
			p := f.programs[i]
			return &p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeProgramRepo) Create(ctx context.Context, p *model.Program) error { return nil }
func (f *fakeProgramRepo) Update(ctx context.Context, p *model.Program) error { return nil }
func (f *fakeProgramRepo) Delete(ctx context.Context, id int) error           { return nil }

type fakeSpecialtyRepo struct {
	specialties []model.Specialty
}

func (f *fakeSpecialtyRepo) GetAll(ctx context.Context) ([]model.Specialty, error) {
	return f.specialties, nil
}

func (f *fakeSpecialtyRepo) ListActiveByProgram(ctx context.Context, programID int) ([]model.Specialty, error) {
	var out []model.Specialty
	for _, sp := range f.specialties {
		if sp.ProgramID == programID && sp.Active {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (f *fakeSpecialtyRepo) GetByID(ctx context.Context, id int) (*model.Specialty, error) {
	for i := range f.specialties {
		if f.specialties[i].ID == id {
			sp := f.specialties[i]
			return &sp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeSpecialtyRepo) Create(ctx context.Context, sp *model.Specialty) error { return nil }
func (f *fakeSpecialtyRepo) Update(ctx context.Context, sp *model.Specialty) error { return nil }
func (f *fakeSpecialtyRepo) Delete(ctx context.Context, id int) error              { return nil }

type fakeInstructorRepo struct {
	instructors []model.Instructor
	created     []*model.Instructor
	listCalls   int
}

func (f *fakeInstructorRepo) GetAll(ctx context.Context) ([]model.Instructor, error) {
	return f.instructors, nil
}

func (f *fakeInstructorRepo) List(ctx context.Context, filter model.InstructorFilter) ([]model.Instructor, error) {
	f.listCalls++
	var out []model.Instructor
	for _, ins := range f.instructors {
		if filter.ActiveOnly && !ins.IsActive() {
			continue
		}
		out = append(out, ins)
	}
	return out, nil
}

func (f *fakeInstructorRepo) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	for i := range f.instructors {
		if f.instructors[i].ID == id {
			ins := f.instructors[i]
			return &ins, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeInstructorRepo) Create(ctx context.Context, ins *model.Instructor) error {
	f.created = append(f.created, ins)
	return nil
}

func (f *fakeInstructorRepo) Update(ctx context.Context, ins *model.Instructor) error { return nil }
func (f *fakeInstructorRepo) Delete(ctx context.Context, id int) error                { return nil }

type fakePeriodRepo struct {
	periods []model.Period
}

func (f *fakePeriodRepo) GetAll(ctx context.Context) ([]model.Period, error) {
	return f.periods, nil
}

func (f *fakePeriodRepo) GetByID(ctx context.Context, id int) (*model.Period, error) {
	for i := range f.periods {
		if f.periods[i].ID == id {
			p := f.periods[i]
			return &p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePeriodRepo) GetActive(ctx context.Context) (*model.Period, error) {
	for i := range f.periods {
		if f.periods[i].Active {
			p := f.periods[i]
			return &p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePeriodRepo) Create(ctx context.Context, p *model.Period) error { return nil }
func (f *fakePeriodRepo) Update(ctx context.Context, p *model.Period) error { return nil }

func (f *fakePeriodRepo) SetActive(ctx context.Context, id int, active bool) error {
	for i := range f.periods {
		if f.periods[i].ID == id {
			f.periods[i].Active = active
		} else if active {
			f.periods[i].Active = false
		}
	}
	return nil
}

func (f *fakePeriodRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeAdminRepo struct {
	admins []model.Admin
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	for i := range f.admins {
		if f.admins[i].Email == email {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	for i := range f.admins {
		if f.admins[i].ID == id {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) Create(ctx context.Context, a *model.Admin) error {
	a.ID = len(f.admins) + 1
	f.admins = append(f.admins, *a)
	return nil
}

type fakeEvaluationRepo struct {
	inserted []*model.Evaluation
}

// InsertBatch mimics the idempotent on-conflict skip: a row with a
// (submission, instructor) pair already present is not stored again.
func (f *fakeEvaluationRepo) InsertBatch(ctx context.Context, evals []*model.Evaluation) (int, error) {
	count := 0
	for _, ev := range evals {
		dup := false
		for _, existing := range f.inserted {
			if existing.SubmissionID == ev.SubmissionID && existing.InstructorID == ev.InstructorID {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		f.inserted = append(f.inserted, ev)
		count++
	}
	return count, nil
}

func (f *fakeEvaluationRepo) List(ctx context.Context, filter model.EvaluationFilter, page, perPage int) ([]model.Evaluation, int64, error) {
	out := f.all(filter)
	return out, int64(len(out)), nil
}

func (f *fakeEvaluationRepo) GetByID(ctx context.Context, id int) (*model.Evaluation, error) {
	for _, ev := range f.inserted {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEvaluationRepo) ListAll(ctx context.Context, filter model.EvaluationFilter) ([]model.Evaluation, error) {
	return f.all(filter), nil
}

func (f *fakeEvaluationRepo) all(filter model.EvaluationFilter) []model.Evaluation {
	var out []model.Evaluation
	for _, ev := range f.inserted {
		if filter.PeriodID != nil && ev.PeriodID != *filter.PeriodID {
			continue
		}
		if filter.ProgramID != nil && ev.ProgramID != *filter.ProgramID {
			continue
		}
		if filter.InstructorID != nil && ev.InstructorID != *filter.InstructorID {
			continue
		}
		out = append(out, *ev)
	}
	return out
}
