package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
)

// Postgres error codes relevant to the admin CRUD surface.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// failDB maps a repository error onto the API error taxonomy. Unknown
// errors collapse to a 500 without leaking driver details.
func failDB(c *gin.Context, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		case pgForeignKeyViolation:
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
	}

	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// pathID parses the :id path parameter. On failure it writes the error
// response and returns ok=false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// queryIntPtr parses an optional integer query parameter.
func queryIntPtr(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
