package wizard

import (
	"strings"

	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Selections carries the student's choices relevant to instructor
// resolution for a rating phase.
type Selections struct {
	ProgramID   int
	SpecialtyID *int
	// Subject is the materia the student picked for the current phase
	// (empty until chosen or auto-selected).
	Subject string
}

// tier is one fallback level of candidate filtering. Tiers are tried in
// order; the first one yielding any instructor wins. Missing categorical
// data (an unpopulated es_basica column, a specialty nobody was assigned
// to) is therefore non-fatal.
type tier struct {
	name  string
	match func(model.Instructor) bool
}

// tiersFor returns the ordered fallback tiers for a rating phase.
func tiersFor(phase Phase, sel Selections) []tier {
	switch phase {
	case PhaseCoreRating:
		return []tier{
			{"program+core", func(i model.Instructor) bool {
				return i.ProgramID == sel.ProgramID && i.CoreSubject
			}},
			{"program", func(i model.Instructor) bool {
				return i.ProgramID == sel.ProgramID
			}},
		}
	case PhaseSpecialtyRating:
		// Without a selected specialty there is nothing to rate here; the
		// program fallback applies only when the chosen specialty has no
		// instructors assigned.
		if sel.SpecialtyID == nil {
			return nil
		}
		return []tier{
			{"specialty", func(i model.Instructor) bool {
				return i.SpecialtyID != nil && *i.SpecialtyID == *sel.SpecialtyID
			}},
			{"program", func(i model.Instructor) bool {
				return i.ProgramID == sel.ProgramID
			}},
		}
	case PhaseSharedRating:
		return []tier{
			{"program+shared", func(i model.Instructor) bool {
				return i.ProgramID == sel.ProgramID && i.SharedSubject
			}},
		}
	default:
		return nil
	}
}

// ResolveCandidates applies the phase's fallback tiers over the full
// candidate set, keeping only active-or-unset instructors. A nil activa
// counts as active.
func ResolveCandidates(phase Phase, sel Selections, all []model.Instructor) []model.Instructor {
	for _, t := range tiersFor(phase, sel) {
		var out []model.Instructor
		for _, ins := range all {
			if ins.IsActive() && t.match(ins) {
				out = append(out, ins)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// spanishCollator matches the frontend's localeCompare(..., 'es')
// ordering.
var spanishCollator = collate.New(language.Spanish)

// Subjects derives the distinct subject-name set from a candidate list:
// trimmed, case-preserved, blanks dropped, Spanish-collated.
func Subjects(candidates []model.Instructor) []string {
	seen := make(map[string]struct{}, len(candidates))
	var subjects []string
	for _, ins := range candidates {
		name := strings.TrimSpace(ins.Subject)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		subjects = append(subjects, name)
	}
	spanishCollator.SortStrings(subjects)
	return subjects
}

// FilterBySubject keeps the candidates whose trimmed subject name matches
// exactly.
func FilterBySubject(candidates []model.Instructor, subject string) []model.Instructor {
	var out []model.Instructor
	for _, ins := range candidates {
		if strings.TrimSpace(ins.Subject) == subject {
			out = append(out, ins)
		}
	}
	return out
}

// Resolution is the fully derived state of a rating phase given the
// loaded candidates and the student's subject pick so far.
type Resolution struct {
	// Candidates is the phase's instructor pool after fallback tiers.
	Candidates []model.Instructor
	// Subjects is the distinct subject-name set of the pool.
	Subjects []string
	// Subject is the effective materia: auto-selected when only one
	// exists, otherwise the student's explicit pick (may be empty).
	Subject string
	// Instructors is the subject-filtered subset to rate. Empty until a
	// subject is in effect.
	Instructors []model.Instructor
	// AutoInstructor is set when exactly one instructor remains, in
	// which case no picker is shown.
	AutoInstructor *model.Instructor
}

// Empty reports whether the phase has nothing to rate, making it
// non-blocking (the wizard advances past it without a rating).
func (r Resolution) Empty() bool {
	return len(r.Candidates) == 0
}

// Resolve computes the full phase resolution. selectedSubject is the
// student's explicit materia pick, ignored when it is not in the derived
// subject set.
func Resolve(phase Phase, sel Selections, all []model.Instructor, selectedSubject string) Resolution {
	res := Resolution{Candidates: ResolveCandidates(phase, sel, all)}
	res.Subjects = Subjects(res.Candidates)

	switch {
	case len(res.Subjects) == 1:
		res.Subject = res.Subjects[0]
	case selectedSubject != "":
		for _, s := range res.Subjects {
			if s == selectedSubject {
				res.Subject = selectedSubject
				break
			}
		}
	}

	if res.Subject != "" {
		res.Instructors = FilterBySubject(res.Candidates, res.Subject)
		if len(res.Instructors) == 1 {
			res.AutoInstructor = &res.Instructors[0]
		}
	}
	return res
}
