package errors

import "errors"

// Kind classifies a failure by where it surfaced in the game client. It decides
// how the failure is presented (banner, transcript line or both).
type Kind string

// Failure kinds
const (
	KindConnection            Kind = "connection"
	KindWorldGeneration       Kind = "world_generation"
	KindCommandProcessing     Kind = "command_processing"
	KindValidationUnavailable Kind = "japanese_validation"
	KindSaveLoad              Kind = "save_load"
	KindStateNotInitialized   Kind = "general"
)

// GetKind returns the outermost failure kind in err's chain, or the empty Kind
func GetKind(err error) Kind {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		var customErr *Error
		if !errors.As(cur, &customErr) {
			return ""
		}
		if customErr.Kind != "" {
			return customErr.Kind
		}
		cur = customErr
	}
	return ""
}
