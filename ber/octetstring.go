package ber

// EncodeOctetString wraps b as an OCTET STRING.
func EncodeOctetString(b []byte) []byte {
	return encodeTLV(TagOctetString, b)
}

// DecodeOctetString reads an OCTET STRING from the front of data.
func DecodeOctetString(data []byte) (v []byte, rest []byte, err error) {
	content, rest, err := decodeTLV(data, TagOctetString)
	if err != nil {
		return nil, nil, err
	}
	// Return a copy so the caller isn't aliasing the input buffer.
	v = make([]byte, len(content))
	copy(v, content)
	return v, rest, nil
}
