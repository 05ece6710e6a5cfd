package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrAdminAccessOnly    ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Survey wizard ─────────────────────────────────────────────────
	ErrSessionNotFound       ErrCode = "SESSION_NOT_FOUND"
	ErrPhaseMismatch         ErrCode = "PHASE_MISMATCH"
	ErrConsentRequired       ErrCode = "CONSENT_REQUIRED"
	ErrProgramNotAvailable   ErrCode = "PROGRAM_NOT_AVAILABLE"
	ErrSubjectNotAvailable   ErrCode = "SUBJECT_NOT_AVAILABLE"
	ErrInstructorNotSelected ErrCode = "INSTRUCTOR_NOT_SELECTED"
	ErrIncompleteRatings     ErrCode = "INCOMPLETE_RATINGS"
	ErrRatingOutOfRange      ErrCode = "RATING_OUT_OF_RANGE"
	ErrNoActivePeriod        ErrCode = "NO_ACTIVE_PERIOD"
	ErrSpecialtyRequired     ErrCode = "SPECIALTY_REQUIRED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Correo o contraseña incorrectos."
	case ErrSessionInvalidated:
		return "Tu sesión ha expirado. Inicia sesión nuevamente."
	case ErrTokenRequired:
		return "Se requiere un token de autenticación."
	case ErrTokenInvalid:
		return "El token de autenticación no es válido."
	case ErrAdminAccessOnly:
		return "Este recurso es exclusivo para administradores."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "La validación falló. Revisa los datos ingresados."
	case ErrInvalidID:
		return "El formato del ID no es válido."
	case ErrInvalidPayload:
		return "El cuerpo de la petición no es válido."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "El recurso no fue encontrado."
	case ErrConflict:
		return "El recurso ya existe."
	case ErrDependencyExists:
		return "No se puede eliminar porque otros registros dependen de este dato."

	// ─── Survey wizard ─────────────────────────────────────────────────
	case ErrSessionNotFound:
		return "No se encontró la sesión de evaluación. Inicia la encuesta nuevamente."
	case ErrPhaseMismatch:
		return "Esta operación no corresponde al paso actual de la evaluación."
	case ErrConsentRequired:
		return "Debes aceptar el consentimiento informado para continuar."
	case ErrProgramNotAvailable:
		return "La maestría seleccionada no está disponible."
	case ErrSubjectNotAvailable:
		return "La materia seleccionada no está disponible para este paso."
	case ErrInstructorNotSelected:
		return "Selecciona el profesor/a antes de continuar."
	case ErrIncompleteRatings:
		return "Por favor, califica todos los reactivos antes de continuar."
	case ErrRatingOutOfRange:
		return "Las calificaciones deben ser números enteros entre 0 y 10."
	case ErrNoActivePeriod:
		return "La evaluación no está disponible por el momento: no hay un período activo."
	case ErrSpecialtyRequired:
		return "Las materias que no son básicas deben tener una especialidad asignada."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Demasiadas peticiones. Intenta de nuevo más tarde."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocurrió un error interno del servidor."
	default:
		return "Ocurrió un error inesperado."
	}
}
