package broken

// DoomedError lives in a package that does not type-check, so it must be
// skipped by the scan along with everything else in here.
type DoomedError struct {
	msg string
}

func (e DoomedError) Error() string { return e.msg }

var _ = undefinedIdentifier
