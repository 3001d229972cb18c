// Package ber implements the subset of ASN.1 Basic Encoding Rules that
// SNMPv1 peers require: definite-form tagged length-value encoding for
// INTEGER, OCTET STRING, NULL, OBJECT IDENTIFIER, and constructed
// (SEQUENCE and context-specific) containers.
//
// The package is pure byte-in/byte-out: it has no knowledge of SNMP
// message structure and performs no I/O.
package ber

// Universal class tags.
const (
	TagInteger          byte = 0x02
	TagOctetString      byte = 0x04
	TagNull             byte = 0x05
	TagObjectIdentifier byte = 0x06

	// TagSequence is the canonical ASN.1 SEQUENCE tag. Some early SNMP
	// implementations mis-encode this as 0x33; a conforming peer must
	// both emit and expect 0x30.
	TagSequence byte = 0x30
)

// SNMPv1 PDU tags: context-specific, constructed.
const (
	TagGetRequest     byte = 0xA0
	TagGetNextRequest byte = 0xA1
	TagGetResponse    byte = 0xA2
	TagSetRequest     byte = 0xA3
)
