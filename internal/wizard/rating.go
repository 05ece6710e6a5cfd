package wizard

import (
	"errors"

	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

// Rating capture errors. Missing instructor pick and missing ratings are
// distinct, user-visible failures.
var (
	ErrInstructorNotSelected  = errors.New("instructor must be selected before rating")
	ErrIncompleteRatings      = errors.New("all questions must be rated")
	ErrRatingOutOfRange       = errors.New("rating values must be integers between 0 and 10")
	ErrInstructorNotCandidate = errors.New("selected instructor is not a candidate for this phase")
)

// ValidateRatings checks that every reactivo 1..17 carries an integer in
// [0, 10]. Extra keys outside that range are rejected as well.
func ValidateRatings(ratings map[int]int) error {
	for q, v := range ratings {
		if q < 1 || q > NumQuestions {
			return ErrRatingOutOfRange
		}
		if v < 0 || v > 10 {
			return ErrRatingOutOfRange
		}
	}
	for q := 1; q <= NumQuestions; q++ {
		if _, ok := ratings[q]; !ok {
			return ErrIncompleteRatings
		}
	}
	return nil
}

// ValidateCapture validates one rating submission against the phase's
// resolved instructor subset and returns the instructor being rated.
// With more than one candidate an explicit pick is mandatory; with
// exactly one the pick is implied.
func ValidateCapture(candidates []model.Instructor, instructorID *int, ratings map[int]int) (*model.Instructor, error) {
	var chosen *model.Instructor
	switch {
	case instructorID != nil:
		for i := range candidates {
			if candidates[i].ID == *instructorID {
				chosen = &candidates[i]
				break
			}
		}
		if chosen == nil {
			return nil, ErrInstructorNotCandidate
		}
	case len(candidates) == 1:
		chosen = &candidates[0]
	default:
		return nil, ErrInstructorNotSelected
	}

	if err := ValidateRatings(ratings); err != nil {
		return nil, err
	}
	return chosen, nil
}

// Band is the presentational tier of a score. It never affects
// validation; admins see the same banding on submitted evaluations.
type Band string

const (
	BandUnsatisfactory Band = "insatisfactorio"
	BandRegular        Band = "regular"
	BandExcellent      Band = "excelente"
)

// BandFor buckets a score: v <= 6 unsatisfactory, 6 < v <= 8.5 regular,
// v > 8.5 excellent. Boundaries are inclusive on the lower band.
func BandFor(v float64) Band {
	switch {
	case v <= 6:
		return BandUnsatisfactory
	case v <= 8.5:
		return BandRegular
	default:
		return BandExcellent
	}
}

// Average returns the mean of the 17 ratings of an evaluation row.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, v := range ratings {
		sum += v
	}
	return float64(sum) / float64(len(ratings))
}
