package snmp

import (
	"strconv"
	"strings"
)

// OID is a hierarchical object identifier: an ordered sequence of
// non-negative integers of length >= 2, whose first component is in
// {0,1,2} and whose second is in 0..39 when the first is 0 or 1.
type OID []uint32

// ParseOID parses a dotted-decimal OID string such as
// "1.3.6.1.2.1.1.1.0". Leading and trailing dots are ignored.
func ParseOID(s string) (OID, error) {
	parts := strings.Split(strings.Trim(s, "."), ".")
	oid := make(OID, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, &InvalidOIDStringError{Input: s}
		}
		oid[i] = uint32(v)
	}
	return oid, nil
}

// String renders the OID in dotted-decimal form.
func (o OID) String() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ".")
}

// Clone returns an independent copy of the OID.
func (o OID) Clone() OID {
	c := make(OID, len(o))
	copy(c, o)
	return c
}

// Equal reports whether o and other have identical components.
func (o OID) Equal(other OID) bool {
	return o.Compare(other) == 0
}

// Compare defines a total order: lexicographic on the integer sequence,
// where a proper prefix sorts before its extension and, at the first
// differing position, the smaller integer sorts first.
func (o OID) Compare(other OID) int {
	n := len(o)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if o[i] != other[i] {
			if o[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(o) < len(other):
		return -1
	case len(o) > len(other):
		return 1
	default:
		return 0
	}
}

// InvalidOIDStringError is returned by ParseOID when a component of the
// input isn't a non-negative integer.
type InvalidOIDStringError struct {
	Input string
}

func (e *InvalidOIDStringError) Error() string {
	return "snmp: invalid oid string: " + e.Input
}
