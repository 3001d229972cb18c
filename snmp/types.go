package snmp

import (
	"encoding/hex"
	"strconv"

	"github.com/maplestarplayl/snmpv1-go/ber"
)

// ValueKind identifies which field of an SnmpValue is meaningful.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindOctetString
	KindNull
	KindOID
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindOctetString:
		return "OctetString"
	case KindNull:
		return "Null"
	case KindOID:
		return "ObjectIdentifier"
	default:
		return "Unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// SnmpValue is the tagged variant carried by a Varbind: exactly one of
// Int, Bytes or OID is meaningful, selected by Kind.
type SnmpValue struct {
	Kind  ValueKind
	Int   int32
	Bytes []byte
	OID   OID
}

// Integer wraps a signed 32-bit value.
func Integer(v int32) SnmpValue { return SnmpValue{Kind: KindInteger, Int: v} }

// OctetString wraps an arbitrary byte sequence.
func OctetString(b []byte) SnmpValue { return SnmpValue{Kind: KindOctetString, Bytes: b} }

// Null is the placeholder value carried in Get/GetNext request varbinds.
func Null() SnmpValue { return SnmpValue{Kind: KindNull} }

// ObjectIdentifier wraps an OID value.
func ObjectIdentifier(oid OID) SnmpValue { return SnmpValue{Kind: KindOID, OID: oid} }

// Equal reports whether v and other carry the same kind and value.
func (v SnmpValue) Equal(other SnmpValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Int == other.Int
	case KindOctetString:
		return string(v.Bytes) == string(other.Bytes)
	case KindNull:
		return true
	case KindOID:
		return v.OID.Equal(other.OID)
	default:
		return false
	}
}

func (v SnmpValue) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindOctetString:
		return string(v.Bytes)
	case KindNull:
		return "Null"
	case KindOID:
		return v.OID.String()
	default:
		return hex.EncodeToString(v.Bytes)
	}
}

// Varbind is an (OID, value) pair; in Get/GetNext requests the value
// position carries Null as a placeholder.
type Varbind struct {
	OID   OID
	Value SnmpValue
}

// PDUKind distinguishes the four supported PDU types. Its underlying
// value is the BER context-specific tag used on the wire.
type PDUKind byte

const (
	KindGetRequest     PDUKind = PDUKind(ber.TagGetRequest)
	KindGetNextRequest PDUKind = PDUKind(ber.TagGetNextRequest)
	KindGetResponse    PDUKind = PDUKind(ber.TagGetResponse)
	KindSetRequest     PDUKind = PDUKind(ber.TagSetRequest)
)

func (k PDUKind) String() string {
	switch k {
	case KindGetRequest:
		return "GetRequest"
	case KindGetNextRequest:
		return "GetNextRequest"
	case KindGetResponse:
		return "GetResponse"
	case KindSetRequest:
		return "SetRequest"
	default:
		return "Unknown(0x" + strconv.FormatInt(int64(k), 16) + ")"
	}
}

// ErrorStatus values defined by SNMPv1; this core only ever produces
// NoError and NoSuchName.
const (
	NoError    int32 = 0
	NoSuchName int32 = 2
)

// PDU is the operation envelope: a kind, a request correlator, an error
// status/index pair, and the ordered varbind list it carries.
type PDU struct {
	Kind        PDUKind
	RequestID   int32
	ErrorStatus int32
	ErrorIndex  int32
	Varbinds    []Varbind
}

// Message is the outermost SNMPv1 envelope.
type Message struct {
	Version   int32
	Community []byte
	PDU       PDU
}
