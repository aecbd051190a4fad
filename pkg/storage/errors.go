package storage

import "creditscore/pkg/serrors"

// Misuse of the transaction lifecycle is a programming error, so both carry
// the internal kind and surface as a 500 if they ever reach a transport.
var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle. Nested
	// transactions are not supported.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "storage handle is already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback on a handle that did not
	// come from Begin.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "storage handle is not in a transaction")
)
