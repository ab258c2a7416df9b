package mongokit

import (
	"errors"
	"fmt"
)

var (
	// ErrFailedToConnect is returned when the client cannot reach the server
	// within the configured retry budget.
	ErrFailedToConnect = errors.New("failed to connect to mongo")

	// ErrHealthcheckFailed is returned by the healthcheck when a ping fails.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")

	// ErrMissingDatabaseName is returned when the connection URL has no
	// database name in its path.
	ErrMissingDatabaseName = errors.New("connection url has no database name")

	// ErrEmptyCollectionName is returned when a model declares an empty
	// collection name.
	ErrEmptyCollectionName = errors.New("empty collection name")

	// ErrSchemaValidatorNotApplied is returned when the collMod command does
	// not report success for a declared schema validator.
	ErrSchemaValidatorNotApplied = errors.New("can't set schema validator")

	// ErrInvalidIndexSpec is returned for malformed compact index-spec strings.
	ErrInvalidIndexSpec = errors.New("invalid index spec")

	// ErrInvalidObjectID is returned when a string is not a valid ObjectID.
	ErrInvalidObjectID = errors.New("invalid object id")

	// ErrParsingConfig is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("mongo document not found")
)

// NotFoundError is returned by single-document fetch and update-and-fetch
// operations when no document matches. It carries the requested identifier.
type NotFoundError struct {
	ID any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mongo document not found: %v", e.ID)
}

// Is reports a match against ErrNotFound so callers can use errors.Is without
// caring about the identifier.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
