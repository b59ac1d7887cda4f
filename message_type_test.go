package textsecure

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseMessageType(t *testing.T) {
	tests := []struct {
		value int64
		want  MessageType
	}{
		{0, UnknownMessageType},
		{1, EncryptedMessageType},
		{2, IgnoreOnIOSMessageType},
		{3, PreKeyMessageType},
		{4, UnencryptedMessageType},
		{5, UnknownMessageType},
		{6, UnknownMessageType},
		{-1, UnknownMessageType},
		{255, UnknownMessageType},
		{math.MaxInt32 + 1, UnknownMessageType},
		{math.MaxInt64, UnknownMessageType},
		{math.MinInt64, UnknownMessageType},
	}

	for _, tt := range tests {
		if got := ParseMessageType(tt.value); got != tt.want {
			t.Errorf("ParseMessageType(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

// TestParseMessageTypeNeverOutsideSet sweeps a range of values and checks the
// result is always one of the five named types.
func TestParseMessageTypeNeverOutsideSet(t *testing.T) {
	for v := int64(-1000); v <= 1000; v++ {
		got := ParseMessageType(v)
		if got < UnknownMessageType || got > UnencryptedMessageType {
			t.Fatalf("ParseMessageType(%d) = %d, outside the known set", v, got)
		}
		if (v < 0 || v > 4) && got != UnknownMessageType {
			t.Fatalf("ParseMessageType(%d) = %v, want Unknown", v, got)
		}
	}
}

func TestMessageTypeString(t *testing.T) {
	tests := []struct {
		msgType MessageType
		want    string
	}{
		{UnknownMessageType, "Unknown"},
		{EncryptedMessageType, "Encrypted"},
		{IgnoreOnIOSMessageType, "IgnoreOnIOS"},
		{PreKeyMessageType, "PreKey"},
		{UnencryptedMessageType, "Unencrypted"},
		{MessageType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.msgType.String(); got != tt.want {
			t.Errorf("MessageType(%d).String() = %q, want %q", tt.msgType, got, tt.want)
		}
	}
}

func TestMessageTypePredicates(t *testing.T) {
	tests := []struct {
		msgType   MessageType
		known     bool
		encrypted bool
	}{
		{UnknownMessageType, false, false},
		{EncryptedMessageType, true, true},
		{IgnoreOnIOSMessageType, true, false},
		{PreKeyMessageType, true, true},
		{UnencryptedMessageType, true, false},
		{MessageType(5), false, false},
	}

	for _, tt := range tests {
		if got := tt.msgType.IsKnown(); got != tt.known {
			t.Errorf("%v.IsKnown() = %t, want %t", tt.msgType, got, tt.known)
		}
		if got := tt.msgType.IsEncrypted(); got != tt.encrypted {
			t.Errorf("%v.IsEncrypted() = %t, want %t", tt.msgType, got, tt.encrypted)
		}
	}
}

func TestMessageTypeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MessageType
		wantErr bool
	}{
		{"encrypted", `1`, EncryptedMessageType, false},
		{"prekey", `3`, PreKeyMessageType, false},
		{"future type", `17`, UnknownMessageType, false},
		{"negative", `-2`, UnknownMessageType, false},
		{"huge", `123456789012345678901234567890`, UnknownMessageType, false},
		{"integral float", `4.0`, UnencryptedMessageType, false},
		{"fraction", `1.5`, UnknownMessageType, false},
		{"null", `null`, UnknownMessageType, false},
		{"string", `"1"`, UnknownMessageType, true},
		{"bool", `true`, UnknownMessageType, true},
		{"object", `{}`, UnknownMessageType, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncryptedMessageType
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrMalformedResponse) {
					t.Errorf("Unmarshal(%s) error = %v, want ErrMalformedResponse", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMessageTypeMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Type MessageType `json:"type"`
	}{PreKeyMessageType})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(out) != `{"type":3}` {
		t.Errorf("Marshal = %s, want {\"type\":3}", out)
	}
}
