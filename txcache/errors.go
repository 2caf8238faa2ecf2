package txcache

import "errors"

var (
	// ErrEmptyTxID indicates an empty transaction id was supplied.
	ErrEmptyTxID = errors.New("txcache: txid must not be empty")

	// ErrEmptyTxHex indicates an empty transaction encoding was supplied.
	ErrEmptyTxHex = errors.New("txcache: transaction hex must not be empty")
)
