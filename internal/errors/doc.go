// Package errors provides structured errors for the choice engine.
//
// Every error carries a Code that maps onto both gRPC and HTTP status codes,
// a user-facing Message, an optional Cause and free-form Meta.
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// # Choice errors
//
// The choice engine distinguishes failures that share a transport code by a
// Kind stored in Meta:
//
//   - MalformedIdentifier (InvalidArgument): a choice id that does not decode
//   - InvalidSelection (InvalidArgument): a rejected selection, with the
//     choice id, offending value and reason
//   - ChoiceNotUndoable (FailedPrecondition): undo of a permanent choice or
//     outside its window
//   - ChoiceNotFound (NotFound): a well-formed id with no matching choice
//
// Callers branch with IsInvalidSelection, IsChoiceNotUndoable and friends.
// ToGRPCError ships Meta as an errdetails.ErrorInfo whose Reason is the kind.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("RedisAddr", cfg.RedisAddr, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
