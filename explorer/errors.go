package explorer

import (
	"errors"

	"github.com/bitfsorg/blockexplorer-go/network"
)

// RemoteServiceError is returned by every operation whose remote call failed.
type RemoteServiceError = network.RemoteServiceError

var (
	// ErrInvalidAddress indicates an empty address was supplied.
	ErrInvalidAddress = errors.New("explorer: address must not be empty")

	// ErrEmptyTransaction indicates an empty transaction hex was supplied for broadcast.
	ErrEmptyTransaction = errors.New("explorer: transaction hex must not be empty")

	// ErrFeeTargetMissing indicates the fee table had no entry for the confirmation target.
	ErrFeeTargetMissing = errors.New("explorer: fee estimate for confirmation target missing")

	// ErrNilParam indicates a required constructor argument was nil.
	ErrNilParam = errors.New("explorer: required parameter is nil")
)
