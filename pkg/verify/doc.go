// Package verify runs declarative field verification.
//
// A caller registers Bindings, each pairing a field identifier and a RuleSpec
// with an Accessor that reads the field's current value. Engine.ValidateAll
// sorts the bindings by rule order (stable, so equal orders keep registration
// order), reads and trims each value, dispatches to the validator selected by
// the rule's Kind and stops at the first failure. The failure message, custom
// or default, goes to the configured FeedbackSink unless the rule is Silent,
// and is returned in the Result.
//
// # Usage
//
//	engine := verify.New(verify.WithFeedback(verify.FeedbackFunc(showToast)))
//
//	res := engine.ValidateAll(
//	    verify.Bind("name", verify.NewRule(verify.KindEmpty, verify.WithMaxLength(20)), verify.Func(nameInput.Text)),
//	    verify.Bind("phone", verify.NewRule(verify.KindPhoneCN, verify.WithOrder(2)), verify.StringPtr(&phone)),
//	    verify.Bind("id", verify.NewRule(verify.KindIDCN, verify.WithOrder(3), verify.Silent()), verify.String(id)),
//	)
//	if !res.Passed() {
//	    return res.Err()
//	}
//
// ValidateAllContext runs the same pass and writes the engine's log records
// with the given context, so context-scoped log values such as a run id are kept.
//
// # Error Handling
//
// Verification failures are values: Result carries the failing field and
// message, and Result.Err returns a validator.ValidationErrors for it. A
// pass without any bindings fails with ErrNoFields. Bindings that cannot be
// evaluated (nil Accessor, undeclared Kind) are programmer errors and make
// ValidateAll panic with an error wrapping ErrMisconfiguredField.
package verify
