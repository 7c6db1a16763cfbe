// Package errors provides structured error handling for guild-api.
//
// Errors carry a Code, a user-facing message, optional metadata, and an
// optional wrapped cause:
//
//	err := errors.NotFound("profile not found")
//	err := errors.ResourceExhausted("slow down").WithMeta("seconds_remaining", 4)
//
// Wrapping preserves the code of an already-coded error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get profile")
//	}
//
// Handlers translate codes to HTTP statuses via Code.HTTPStatus, so
// orchestrators never deal in transport concerns directly.
package errors
