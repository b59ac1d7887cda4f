package textsecure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParseMessageType resolves a wire value to its envelope type.
//
// Values outside the range this client knows about resolve to
// UnknownMessageType instead of failing, so a server that starts sending a
// new type does not break older clients.
func ParseMessageType(v int64) MessageType {
	if v < int64(UnknownMessageType) || v > int64(maxMessageType) {
		return UnknownMessageType
	}
	return MessageType(v)
}

// String returns the name of the envelope type.
func (t MessageType) String() string {
	return getMessageTypeName(t)
}

// IsKnown reports whether t is one of the named envelope types other than
// UnknownMessageType.
func (t MessageType) IsKnown() bool {
	return t > UnknownMessageType && t <= maxMessageType
}

// IsEncrypted reports whether envelopes of this type carry ciphertext.
func (t MessageType) IsEncrypted() bool {
	return t == EncryptedMessageType || t == PreKeyMessageType
}

// MarshalJSON writes the envelope type as its integer wire value.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(t), 10)), nil
}

// UnmarshalJSON accepts any JSON number. Integers go through
// ParseMessageType, other numbers become UnknownMessageType. Anything that
// is not a number is an error.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = UnknownMessageType
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil || len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("%w: envelope type %s is not a number", ErrMalformedResponse, string(data))
	}

	if i, err := n.Int64(); err == nil {
		*t = ParseMessageType(i)
		return nil
	}

	// Large or fractional values are still numbers, just not ones we know.
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && f >= 0 && f <= float64(maxMessageType) {
		*t = MessageType(int32(f))
		return nil
	}
	*t = UnknownMessageType
	return nil
}
