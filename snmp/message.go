package snmp

import (
	"fmt"

	"github.com/maplestarplayl/snmpv1-go/ber"
)

// allowedPDUTags lists the context-specific container tags DecodePDU will
// accept, used both to identify the PDU's Kind and to recognise the
// container shape shared by SEQUENCE and every PDU type.
var allowedPDUTags = []byte{
	byte(KindGetRequest),
	byte(KindGetNextRequest),
	byte(KindGetResponse),
	byte(KindSetRequest),
}

// EncodeVarbind composes a single (oid, value) pair into a SEQUENCE.
func EncodeVarbind(vb Varbind) ([]byte, error) {
	oidBytes, err := ber.EncodeOID(vb.OID)
	if err != nil {
		return nil, err
	}
	valueBytes, err := encodeValue(vb.Value)
	if err != nil {
		return nil, err
	}
	content := append(oidBytes, valueBytes...)
	return ber.EncodeContainer(ber.TagSequence, content), nil
}

// DecodeVarbind reads a single varbind from the front of data.
func DecodeVarbind(data []byte) (Varbind, []byte, error) {
	_, content, rest, err := ber.DecodeContainer(data, ber.TagSequence)
	if err != nil {
		return Varbind{}, nil, err
	}

	oid, afterOID, err := ber.DecodeOID(content)
	if err != nil {
		return Varbind{}, nil, err
	}

	value, afterValue, err := decodeValue(afterOID)
	if err != nil {
		return Varbind{}, nil, err
	}
	if len(afterValue) != 0 {
		return Varbind{}, nil, ErrInvalidVarbind
	}

	return Varbind{OID: OID(oid), Value: value}, rest, nil
}

// EncodeVarbindList concatenates the encoded varbinds and wraps them in a
// SEQUENCE.
func EncodeVarbindList(varbinds []Varbind) ([]byte, error) {
	var content []byte
	for _, vb := range varbinds {
		encoded, err := EncodeVarbind(vb)
		if err != nil {
			return nil, err
		}
		content = append(content, encoded...)
	}
	return ber.EncodeContainer(ber.TagSequence, content), nil
}

// DecodeVarbindList reads a SEQUENCE of varbinds from the front of data.
func DecodeVarbindList(data []byte) ([]Varbind, []byte, error) {
	_, content, rest, err := ber.DecodeContainer(data, ber.TagSequence)
	if err != nil {
		return nil, nil, err
	}

	var varbinds []Varbind
	for len(content) > 0 {
		vb, next, err := DecodeVarbind(content)
		if err != nil {
			return nil, nil, err
		}
		varbinds = append(varbinds, vb)
		content = next
	}
	return varbinds, rest, nil
}

// EncodePDU concatenates request_id, error_status, error_index and the
// pre-encoded varbind list, wrapping the whole thing with the
// context-specific tag for kind.
func EncodePDU(pdu PDU) ([]byte, error) {
	varbindBytes, err := EncodeVarbindList(pdu.Varbinds)
	if err != nil {
		return nil, err
	}

	content := ber.EncodeInteger(pdu.RequestID)
	content = append(content, ber.EncodeInteger(pdu.ErrorStatus)...)
	content = append(content, ber.EncodeInteger(pdu.ErrorIndex)...)
	content = append(content, varbindBytes...)

	return ber.EncodeContainer(byte(pdu.Kind), content), nil
}

// DecodePDU peeks the container tag to identify kind, then decodes the
// request_id/error_status/error_index/varbinds tuple it carries.
func DecodePDU(data []byte) (PDU, []byte, error) {
	tag, content, rest, err := ber.DecodeContainer(data, allowedPDUTags...)
	if err != nil {
		return PDU{}, nil, err
	}

	requestID, after, err := ber.DecodeInteger(content)
	if err != nil {
		return PDU{}, nil, err
	}
	errorStatus, after, err := ber.DecodeInteger(after)
	if err != nil {
		return PDU{}, nil, err
	}
	errorIndex, after, err := ber.DecodeInteger(after)
	if err != nil {
		return PDU{}, nil, err
	}
	varbinds, after, err := DecodeVarbindList(after)
	if err != nil {
		return PDU{}, nil, err
	}
	if len(after) != 0 {
		return PDU{}, nil, ErrInvalidPDU
	}

	pdu := PDU{
		Kind:        PDUKind(tag),
		RequestID:   requestID,
		ErrorStatus: errorStatus,
		ErrorIndex:  errorIndex,
		Varbinds:    varbinds,
	}
	return pdu, rest, nil
}

// EncodeMessage composes version, community and the pre-encoded pdu bytes
// into the outermost SEQUENCE.
func EncodeMessage(msg Message) ([]byte, error) {
	pduBytes, err := EncodePDU(msg.PDU)
	if err != nil {
		return nil, err
	}

	content := ber.EncodeInteger(msg.Version)
	content = append(content, ber.EncodeOctetString(msg.Community)...)
	content = append(content, pduBytes...)

	return ber.EncodeContainer(ber.TagSequence, content), nil
}

// DecodeMessage parses a full SNMPv1 message from a datagram payload.
// It rejects any version other than 0 and any trailing bytes after the
// outer SEQUENCE.
func DecodeMessage(data []byte) (Message, error) {
	_, content, rest, err := ber.DecodeContainer(data, ber.TagSequence)
	if err != nil {
		return Message{}, err
	}
	if len(rest) != 0 {
		return Message{}, ErrInvalidPDU
	}

	version, after, err := ber.DecodeInteger(content)
	if err != nil {
		return Message{}, err
	}
	if version != 0 {
		return Message{}, ErrUnsupportedVersion
	}

	community, after, err := ber.DecodeOctetString(after)
	if err != nil {
		return Message{}, err
	}

	pdu, after, err := DecodePDU(after)
	if err != nil {
		return Message{}, err
	}
	if len(after) != 0 {
		return Message{}, ErrInvalidPDU
	}

	return Message{Version: version, Community: community, PDU: pdu}, nil
}

func encodeValue(v SnmpValue) ([]byte, error) {
	switch v.Kind {
	case KindInteger:
		return ber.EncodeInteger(v.Int), nil
	case KindOctetString:
		return ber.EncodeOctetString(v.Bytes), nil
	case KindNull:
		return ber.EncodeNull(), nil
	case KindOID:
		return ber.EncodeOID(v.OID)
	default:
		return nil, fmt.Errorf("snmp: unsupported value kind %v", v.Kind)
	}
}

// decodeValue peeks the next tag and dispatches to the matching primitive
// decoder, implementing the "ANY" value position of a varbind.
func decodeValue(data []byte) (SnmpValue, []byte, error) {
	tag, err := ber.PeekTag(data)
	if err != nil {
		return SnmpValue{}, nil, err
	}

	switch tag {
	case ber.TagInteger:
		v, rest, err := ber.DecodeInteger(data)
		return Integer(v), rest, err
	case ber.TagOctetString:
		v, rest, err := ber.DecodeOctetString(data)
		return OctetString(v), rest, err
	case ber.TagNull:
		rest, err := ber.DecodeNull(data)
		return Null(), rest, err
	case ber.TagObjectIdentifier:
		v, rest, err := ber.DecodeOID(data)
		return ObjectIdentifier(OID(v)), rest, err
	default:
		return SnmpValue{}, nil, &ber.UnexpectedTagError{Expected: ber.TagNull, Got: tag}
	}
}
