package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/threads-backend/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_uniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert community: %w", &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		Severity:       "ERROR",
		TableName:      "communities",
		ConstraintName: "communities_slug_key",
	})

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "COMMUNITY_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Community with this Slug already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_foreignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       pgerrcode.ForeignKeyViolation,
		TableName:  "community_members",
		ColumnName: "community_id",
	}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "COMMUNITY_MEMBER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Community does not exist", httpErr.Message)
}

func TestHandleError_notNullViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		TableName:  "threads",
		ColumnName: "text",
	}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, "THREAD_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "text", Error: "is required"}, httpErr.Errors[0])
}

func TestHandleError_notFound(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(NotFound("communities")))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Community not found", httpErr.Message)
}

func TestHandleError_passThroughAndFallback(t *testing.T) {
	original := errs.NewForbiddenError("nope", true)
	assert.Same(t, original, HandleError(original))

	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	httpErr = asHTTPError(t, HandleError(&pgconn.PgError{Code: pgerrcode.TooManyConnections}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: pgerrcode.CheckViolation, Severity: "error"})
	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, Other, ErrCode(errors.New("plain")))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgErr))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "community", singular("communities"))
	assert.Equal(t, "COMMUNITY", singular("COMMUNITIES"))
	assert.Equal(t, "thread", singular("threads"))
	assert.Equal(t, "s", singular("s"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "slug", extractColumnForUniqueViolation("unique_communities_slug"))
	assert.Equal(t, "slug", extractColumnForUniqueViolation("communities_slug_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("communities_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
