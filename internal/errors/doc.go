// Package errors provides structured errors for spellmerge.
//
// Errors carry a code, a message, an optional cause and free-form metadata.
// The code decides how the CLI exits:
//
//	err := errors.SchemaViolationf("spell %q: missing field %s", name, field).
//	    WithMeta("spell", name).
//	    WithMeta("field", field)
//
//	os.Exit(errors.GetCode(err).ExitCode())
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := loader.Load(ctx, r); err != nil {
//	    return errors.Wrap(err, "failed to load catalogue")
//	}
//
// # Error Codes
//
//   - InvalidArgument: bad flags, arguments or config (exit 2)
//   - SchemaViolation: the catalogue or table does not match the supported format (exit 3)
//   - NotFound: a key is not present in a repository
//   - FailedPrecondition: an operation needs a dependency that is not configured
//   - Unavailable: a backing store could not be reached
//   - Internal: I/O and everything else
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
