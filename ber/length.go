package ber

// EncodeLength produces the definite-form BER length prefix for a content
// of n bytes: a single byte for n <= 127 (short form), otherwise a lead
// byte 0x80|k followed by the k big-endian bytes of n (long form, k in
// 1..4).
func EncodeLength(n int) []byte {
	if n <= 127 {
		return []byte{byte(n)}
	}

	var tail []byte
	for x := n; x > 0; x >>= 8 {
		tail = append([]byte{byte(x)}, tail...)
	}
	return append([]byte{0x80 | byte(len(tail))}, tail...)
}

// DecodeLength reads a definite-form length prefix from the start of data,
// returning the decoded length and the number of bytes consumed.
func DecodeLength(data []byte) (length int, consumed int, err error) {
	if len(data) < 1 {
		return 0, 0, ErrTruncated
	}

	first := data[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}

	k := int(first & 0x7f)
	if k == 0 || k > 4 {
		return 0, 0, ErrInvalidLength
	}
	if len(data) < 1+k {
		return 0, 0, ErrTruncated
	}

	for i := 0; i < k; i++ {
		length = length<<8 | int(data[1+i])
	}
	return length, 1 + k, nil
}

// encodeTLV wraps content with a tag byte and its definite-form length.
func encodeTLV(tag byte, content []byte) []byte {
	out := make([]byte, 0, 2+len(content))
	out = append(out, tag)
	out = append(out, EncodeLength(len(content))...)
	out = append(out, content...)
	return out
}

// decodeTLV reads a single tag-length-value from the front of data,
// verifying the tag matches expected, and returns the content and the
// unconsumed remainder.
func decodeTLV(data []byte, expected byte) (content, rest []byte, err error) {
	tag, content, rest, err := DecodeContainer(data, expected)
	if err != nil {
		return nil, nil, err
	}
	_ = tag
	return content, rest, nil
}

// DecodeContainer reads a tag-length-value from the front of data where
// the tag may be any one of allowed (used for SEQUENCE and the
// context-specific PDU tags, which share the same constructed-container
// shape). It returns the tag actually seen, the content bytes and the
// unconsumed remainder.
func DecodeContainer(data []byte, allowed ...byte) (tag byte, content []byte, rest []byte, err error) {
	if len(data) < 1 {
		return 0, nil, nil, ErrTruncated
	}

	tag = data[0]
	ok := false
	for _, t := range allowed {
		if t == tag {
			ok = true
			break
		}
	}
	if !ok {
		expected := byte(0)
		if len(allowed) > 0 {
			expected = allowed[0]
		}
		return 0, nil, nil, &UnexpectedTagError{Expected: expected, Got: tag}
	}

	length, consumed, err := DecodeLength(data[1:])
	if err != nil {
		return 0, nil, nil, err
	}

	start := 1 + consumed
	if len(data) < start+length {
		return 0, nil, nil, ErrTruncated
	}

	return tag, data[start : start+length], data[start+length:], nil
}

// EncodeContainer wraps content in a constructed tag-length-value, used
// for SEQUENCE and the context-specific PDU tags.
func EncodeContainer(tag byte, content []byte) []byte {
	return encodeTLV(tag, content)
}

// PeekTag returns the first byte of data without consuming anything, so
// callers can dispatch on it before choosing which decoder to invoke.
func PeekTag(data []byte) (byte, error) {
	if len(data) < 1 {
		return 0, ErrTruncated
	}
	return data[0], nil
}
