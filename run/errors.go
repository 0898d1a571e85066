package run

import "errors"

// Errors returned by Run-level operations (comparison name management).
// The Editor package (editor.Editor) wraps these same sentinels for its own
// field-setter API.
var (
	ErrEmptyRun           = errors.New("run: cannot have zero segments")
	ErrOldNameNotFound    = errors.New("run: old comparison name not found")
	ErrDuplicateName      = errors.New("run: comparison name already exists")
	ErrNameStartsWithRace = errors.New("run: comparison names starting with \"" + RaceNamePrefix + "\" are reserved")
)
