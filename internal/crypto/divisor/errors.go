package divisor

import "github.com/cockroachdb/errors"

// Errors returned by the divisor engine. Test with errors.Is.
//
// ErrInvalidInput and ErrDegenerateGeometry are caller errors. ErrDivision and
// ErrDegreeOverflow are always wrapped as assertion failures
// (errors.HasAssertionFailure reports true): they mean the engine produced an
// inconsistent result and the witness must not be used.
var (
	ErrInvalidInput       = errors.New("invalid divisor input")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrDivision           = errors.New("divisor division failed")
	ErrDegreeOverflow     = errors.New("divisor degree overflow")
	ErrMismatch           = errors.New("divisor does not match points")
)

// defect marks err as an engine bug.
func defect(err error, format string, args ...interface{}) error {
	return errors.WithAssertionFailure(errors.Wrapf(err, format, args...))
}
