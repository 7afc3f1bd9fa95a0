/*
Package errors implements the error handling used across this module.

Each returned error is built around a registered root error. A root error
carries a unique numeric code so that failures can be reported to clients
in a stable, machine readable form. Use the Is method of a root error to
test what kind of failure any returned error represents:

	if dao.ErrProposalExpired.Is(err) {
		...
	}

Errors are passed up the call stack wrapped with additional context:

	return errors.Wrap(err, "load wallet")

Wrapping never changes the root cause of an error. Stack trace information
is attached once, at the lowest wrap.

Extensions register their own root errors with Register. Codes below 100
are reserved for this package.
*/
package errors
