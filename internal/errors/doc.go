// Package errors provides the coded error type used across the character sheet service.
//
// Every error carries a Code that maps onto a gRPC status code, a user-facing Message,
// optional metadata and, for rejected user intents, a Reason:
//
//	err := errors.PoolExhausted(70).WithMeta("attribute", "Strength")
//	if errors.IsRejection(err) {
//	    // surface errors.GetMessage(err) as a notification
//	}
//
// Wrapping keeps the original code and reason:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load roster")
//	}
//
// Configuration and input checks collect field problems with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("rosterID", input.RosterID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers convert to and from gRPC with ToGRPCError and FromGRPCError. Reasons travel
// as a google.rpc.ErrorInfo detail so clients can tell a rejected intent from a fault.
package errors
