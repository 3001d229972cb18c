package client

import (
	"encoding/hex"
	"log"
	"time"
)

// Hooks defines the trace points a Client invokes while binding its local
// port and during each request/response exchange, following the shape of
// the agent's Hooks.
type Hooks struct {
	// ConnectStart is called by New before binding the ephemeral local
	// port; target is always empty.
	ConnectStart func(target string)

	// ConnectDone is called by New once the bind attempt completes;
	// target is always empty.
	ConnectDone func(target string, err error, d time.Duration)

	// Error is called when Get/GetNext/Set is about to return an error,
	// with the PDU kind as context.
	Error func(context string, target string, err error)

	// WriteDone is called after a request datagram has been written.
	WriteDone func(target string, output []byte, err error, d time.Duration)

	// ReadDone is called after a response datagram has been read.
	ReadDone func(target string, input []byte, err error, d time.Duration)
}

// DefaultHooks logs only errors.
var DefaultHooks = &Hooks{
	Error: func(context, target string, err error) {
		log.Printf("snmp-client error context:%s target:%s err:%v\n", context, target, err)
	},
}

// DiagnosticHooks logs every event, including datagram contents as hex.
var DiagnosticHooks = &Hooks{
	ConnectStart: func(target string) {
		log.Printf("snmp-client connect-start target:%s\n", target)
	},
	ConnectDone: func(target string, err error, d time.Duration) {
		log.Printf("snmp-client connect-done target:%s err:%v took:%s\n", target, err, d)
	},
	Error: DefaultHooks.Error,
	WriteDone: func(target string, output []byte, err error, d time.Duration) {
		log.Printf("snmp-client write-done target:%s err:%v took:%s data:%s\n", target, err, d, hex.EncodeToString(output))
	},
	ReadDone: func(target string, input []byte, err error, d time.Duration) {
		log.Printf("snmp-client read-done target:%s err:%v took:%s data:%s\n", target, err, d, hex.EncodeToString(input))
	},
}

// NoOpHooks discards every event; also used to fill in any nil field left
// by a caller-supplied partial Hooks value.
var NoOpHooks = &Hooks{
	ConnectStart: func(target string) {},
	ConnectDone:  func(target string, err error, d time.Duration) {},
	Error:        func(context, target string, err error) {},
	WriteDone:    func(target string, output []byte, err error, d time.Duration) {},
	ReadDone:     func(target string, input []byte, err error, d time.Duration) {},
}
