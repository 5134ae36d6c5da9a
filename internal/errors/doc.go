// Package errors provides the structured error type used across the jp-mud client.
//
// Every failure that crosses a package boundary is an *Error carrying a Code,
// a Kind, a user-facing Message, an optional Cause and free-form Meta. The Kind
// records where the failure surfaced so the presentation layer can decide
// between a dismissible banner and a transcript line. Wrap carries both the
// Code and the Kind outward.
//
// # Basic Usage
//
//	err := errors.NotFound("saved game not found").
//	    WithMeta("game_id", gameID)
//
//	if err := client.ProcessInput(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to process command").
//	        WithKind(errors.KindCommandProcessing)
//	}
//
// # Remote services
//
// The game server speaks HTTP. Transport failures are wrapped with
// CodeUnavailable, and non-2xx responses are mapped with FromHTTPStatus.
// IsConnectionFailure tells the two apart so the resilience manager only
// counts failures to reach the server.
//
// # Layer-Specific Guidelines
//
// Client layer:
//   - Wrap transport errors with CodeUnavailable
//   - Map response statuses with FromHTTPStatus and keep the server detail
//
// Repository layer:
//   - Return NotFound for missing saves
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Attach a Kind before handing errors to the caller
package errors
