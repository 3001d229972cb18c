package agent

import (
	"encoding/hex"
	"log"
	"net"

	"github.com/maplestarplayl/snmpv1-go/snmp"
)

// Hooks defines the trace points an Agent invokes while it runs, following
// the same shape as the client's trace hooks.
type Hooks struct {
	// StartListening is called once the receive loop begins.
	StartListening func(addr net.Addr)

	// StopListening is called when the receive loop returns, with err set
	// for a fatal socket failure and nil for a clean shutdown.
	StopListening func(addr net.Addr, err error)

	// Error is called after an error condition has been detected while
	// processing a single datagram; it never terminates the loop.
	Error func(context string, err error)

	// ReadComplete is called after a datagram has been read.
	ReadComplete func(addr net.Addr, input []byte, err error)

	// WriteComplete is called after a response has been written.
	WriteComplete func(addr net.Addr, output []byte, err error)

	// Decoded is called once a datagram has been successfully decoded
	// into a Message, before the community check.
	Decoded func(addr net.Addr, msg *snmp.Message)

	// Dispatched is called once a handler has produced a response PDU.
	Dispatched func(addr net.Addr, pdu *snmp.PDU)
}

// DefaultHooks logs only errors.
var DefaultHooks = &Hooks{
	Error: func(context string, err error) {
		log.Printf("snmp-agent error context:%s err:%v\n", context, err)
	},
}

// DiagnosticHooks logs every event, including datagram contents as hex.
var DiagnosticHooks = &Hooks{
	StartListening: func(addr net.Addr) {
		log.Printf("snmp-agent start addr:%s\n", addr)
	},
	StopListening: func(addr net.Addr, err error) {
		log.Printf("snmp-agent stop addr:%s err:%v\n", addr, err)
	},
	Error: DefaultHooks.Error,
	ReadComplete: func(addr net.Addr, input []byte, err error) {
		log.Printf("snmp-agent read source:%s err:%v data:%s\n", addr, err, hex.EncodeToString(input))
	},
	WriteComplete: func(addr net.Addr, output []byte, err error) {
		log.Printf("snmp-agent write target:%s err:%v data:%s\n", addr, err, hex.EncodeToString(output))
	},
	Decoded: func(addr net.Addr, msg *snmp.Message) {
		log.Printf("snmp-agent decoded source:%s kind:%s request_id:%d\n", addr, msg.PDU.Kind, msg.PDU.RequestID)
	},
	Dispatched: func(addr net.Addr, pdu *snmp.PDU) {
		log.Printf("snmp-agent dispatched kind:%s error_status:%d\n", pdu.Kind, pdu.ErrorStatus)
	},
}

// NoOpHooks discards every event; also used to fill in any nil field left
// by a caller-supplied partial Hooks value.
var NoOpHooks = &Hooks{
	StartListening: func(addr net.Addr) {},
	StopListening:  func(addr net.Addr, err error) {},
	Error:          func(context string, err error) {},
	ReadComplete:   func(addr net.Addr, input []byte, err error) {},
	WriteComplete:  func(addr net.Addr, output []byte, err error) {},
	Decoded:        func(addr net.Addr, msg *snmp.Message) {},
	Dispatched:     func(addr net.Addr, pdu *snmp.PDU) {},
}
