package client

import "errors"

// Sentinel errors a caller can match with errors.Is against the error
// returned by Get/GetNext/Set.
var (
	// ErrTimeout indicates no response datagram arrived within the
	// configured timeout (scenario: a bad community string draws no
	// reply from a conforming agent).
	ErrTimeout = errors.New("client: timed out waiting for response")

	// ErrAddressParse indicates target could not be resolved into a UDP
	// address.
	ErrAddressParse = errors.New("client: invalid target address")
)
