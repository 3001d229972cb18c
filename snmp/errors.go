package snmp

import "errors"

var (
	// ErrUnsupportedVersion is returned by DecodeMessage when the version
	// field is anything other than 0 (SNMPv1).
	ErrUnsupportedVersion = errors.New("snmp: unsupported version")

	// ErrInvalidPDU is returned when a PDU's encoded length doesn't match
	// its content, or its envelope is otherwise malformed.
	ErrInvalidPDU = errors.New("snmp: invalid pdu")

	// ErrInvalidVarbind is returned when a varbind carries trailing bytes
	// after its OID and value.
	ErrInvalidVarbind = errors.New("snmp: invalid varbind")
)
