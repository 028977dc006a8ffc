// Package errors provides the coded error type used across the engraving planner.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.MalformedInput("build document is not valid YAML")
//	err := errors.NotFound("build file not found").WithMeta("path", path)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load build")
//	}
//
// Field level problems are collected with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("format", cfg.Format, formats, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Codes
//
//   - MalformedInput: the build document does not have the expected shape
//   - InvalidArgument: bad flags, config or programmatic input
//   - NotFound: the build file or Redis key does not exist
//   - Unavailable: the Redis source could not be reached
//   - Internal: anything else
//
// The CLI turns a code into a process exit status with Code.ExitCode.
package errors
