package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Kind classifies a failed store operation.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPermissionDenied
	KindSchemaMissing
	KindTransientNetwork
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindSchemaMissing:
		return "schema missing"
	case KindTransientNetwork:
		return "transient network"
	default:
		return "unknown"
	}
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrNotFound         = errors.New("record not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrSchemaMissing    = errors.New("schema missing")
	ErrTransient        = errors.New("transient network failure")
	// ErrBackendUnavailable is reported when the store lacks a relation the
	// service depends on. Callers get this instead of synthesized records.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrPolicyRecursion marks a row-level security policy that refers to itself.
	ErrPolicyRecursion = errors.New("infinite recursion in security policy")
)

// SQLSTATE codes the classifier cares about.
const (
	codeUndefinedTable      = "42P01"
	codeUndefinedColumn     = "42703"
	codeUndefinedFunction   = "42883"
	codeInvalidSchemaName   = "3F000"
	codeInsufficientPriv    = "42501"
	codePolicyRecursion     = "42P17"
	codeForeignKeyViolation = "23503"
	codeNoDataFound         = "P0002"
	codeAdminShutdown       = "57P01"
	codeCrashShutdown       = "57P02"
	codeCannotConnectNow    = "57P03"
	codeTooManyConnections  = "53300"
)

// Error is the tagged failure returned by every repository operation.
type Error struct {
	Op   string
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.Op, e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	case ErrSchemaMissing, ErrBackendUnavailable:
		return e.Kind == KindSchemaMissing
	case ErrTransient:
		return e.Kind == KindTransientNetwork
	case ErrPolicyRecursion:
		return e.Code == codePolicyRecursion
	}
	return false
}

// KindOf reports the classification of err, KindUnknown when err did not
// come from a repository.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// classify wraps a raw gorm/driver error into *Error. Already classified
// errors pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var re *Error
	if errors.As(err, &re) {
		return err
	}

	e := &Error{Op: op, Kind: KindUnknown, Err: err}

	var pgErr *pgconn.PgError
	var sqliteErr sqlite3.Error
	var netErr net.Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		e.Kind = KindNotFound
	case errors.As(err, &pgErr):
		e.Code = pgErr.Code
		e.Kind = kindForSQLState(pgErr.Code)
	case errors.As(err, &sqliteErr):
		e.Code = sqliteErr.Code.Error()
		e.Kind = kindForSQLite(sqliteErr)
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &netErr):
		e.Kind = KindTransientNetwork
	}

	return e
}

func kindForSQLState(code string) Kind {
	switch code {
	case codeUndefinedTable, codeUndefinedColumn, codeUndefinedFunction, codeInvalidSchemaName:
		return KindSchemaMissing
	case codeInsufficientPriv, codePolicyRecursion:
		return KindPermissionDenied
	case codeForeignKeyViolation, codeNoDataFound:
		return KindNotFound
	case codeAdminShutdown, codeCrashShutdown, codeCannotConnectNow, codeTooManyConnections:
		return KindTransientNetwork
	}
	// Class 08: connection exceptions.
	if strings.HasPrefix(code, "08") {
		return KindTransientNetwork
	}
	return KindUnknown
}

func kindForSQLite(err sqlite3.Error) Kind {
	switch {
	case strings.Contains(err.Error(), "no such table"), strings.Contains(err.Error(), "no such column"):
		return KindSchemaMissing
	case err.Code == sqlite3.ErrBusy, err.Code == sqlite3.ErrLocked:
		return KindTransientNetwork
	case err.Code == sqlite3.ErrPerm, err.Code == sqlite3.ErrAuth, err.Code == sqlite3.ErrReadonly:
		return KindPermissionDenied
	case err.ExtendedCode == sqlite3.ErrConstraintForeignKey:
		return KindNotFound
	}
	return KindUnknown
}
