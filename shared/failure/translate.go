package failure

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"hms/shared/constant"
	"net"
	"syscall"

	"github.com/lib/pq"
)

const pqClassConnectionException = "08"

// Translate maps any error reaching the HTTP boundary onto a Failure. Failures pass
// through untouched, storage errors are classified by kind and everything else becomes
// an internal error.
func Translate(err error) *Failure {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return toFailure(Conflict(constant.ResponseErrorDuplicate))
		case constant.PqErrorCodeFkViolation:
			return toFailure(BadRequestFromString(constant.ResponseErrorReference))
		case constant.PqErrorCodeCheckViolation,
			constant.PqErrorCodeInvalidText,
			constant.PqErrorCodeInvalidDatetime,
			constant.PqErrorCodeDatetimeOutOfRange,
			constant.PqErrorCodeNumericOutOfRange:
			return toFailure(BadRequestFromString(constant.ResponseErrorInvalidValue))
		}

		if string(pqErr.Code.Class()) == pqClassConnectionException {
			return toFailure(ServiceUnavailable(constant.ResponseErrorUnavailable))
		}
	}

	if isConnectionError(err) {
		return toFailure(ServiceUnavailable(constant.ResponseErrorUnavailable))
	}

	return toFailure(InternalError(constant.ResponseErrorInternal))
}

func toFailure(err error) *Failure {
	fail, _ := err.(*Failure) //nolint:errorlint

	return fail
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
