package textsecure

import (
	"testing"
	"time"
)

// TestMessageTypeConstantsValues verifies envelope type constants match the
// wire values the server sends.
func TestMessageTypeConstantsValues(t *testing.T) {
	tests := []struct {
		name     string
		constant MessageType
		expected int32
	}{
		{"Unknown", UnknownMessageType, 0},
		{"Encrypted", EncryptedMessageType, 1},
		{"IgnoreOnIOS", IgnoreOnIOSMessageType, 2},
		{"PreKey", PreKeyMessageType, 3},
		{"Unencrypted", UnencryptedMessageType, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int32(tt.constant) != tt.expected {
				t.Errorf("message type constant mismatch: got %d, want %d", tt.constant, tt.expected)
			}
		})
	}
}

// TestRouteConstantsValues verifies the route templates byte for byte.
func TestRouteConstantsValues(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"GeneralAPI", GeneralAPI, "v1"},
		{"AccountsAPI", AccountsAPI, "v1/accounts"},
		{"AttributesAPI", AttributesAPI, "/attributes/"},
		{"MessagesAPI", MessagesAPI, "v1/messages/"},
		{"KeysAPI", KeysAPI, "v2/keys"},
		{"SignedKeysAPI", SignedKeysAPI, "v2/keys/signed"},
		{"DirectoryAPI", DirectoryAPI, "v1/directory"},
		{"AttachmentsAPI", AttachmentsAPI, "v1/attachments"},
		{"DeviceProvisioningCodeAPI", DeviceProvisioningCodeAPI, "v1/devices/provisioning/code"},
		{"DeviceProvisioningAPIFormat", DeviceProvisioningAPIFormat, "v1/provisioning/%s"},
		{"DevicesAPIFormat", DevicesAPIFormat, "v1/devices/%s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

func TestHTTPTimeoutConstants(t *testing.T) {
	if HTTPTimeoutSeconds != 10 {
		t.Errorf("HTTPTimeoutSeconds = %d, want 10", HTTPTimeoutSeconds)
	}
	if DefaultHTTPTimeout != 10*time.Second {
		t.Errorf("DefaultHTTPTimeout = %v, want 10s", DefaultHTTPTimeout)
	}
}

// TestPushRegistrationErrorConstants verifies the failure kinds are pairwise
// distinct and keep their declaration order.
func TestPushRegistrationErrorConstants(t *testing.T) {
	kinds := []PushRegistrationError{
		PushRegistrationErrorNetwork,
		PushRegistrationErrorAuthentication,
		PushRegistrationErrorRequest,
	}

	seen := make(map[PushRegistrationError]bool)
	for i, k := range kinds {
		if int(k) != i {
			t.Errorf("kind %s = %d, want %d", k, k, i)
		}
		if seen[k] {
			t.Errorf("kind %s declared twice", k)
		}
		seen[k] = true
		if !k.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", k)
		}
	}

	for _, k := range []PushRegistrationError{-1, 3, 42} {
		if k.IsValid() {
			t.Errorf("PushRegistrationError(%d).IsValid() = true, want false", k)
		}
	}
}

func TestPushRegistrationErrorString(t *testing.T) {
	tests := []struct {
		kind PushRegistrationError
		want string
	}{
		{PushRegistrationErrorNetwork, "network"},
		{PushRegistrationErrorAuthentication, "authentication"},
		{PushRegistrationErrorRequest, "request"},
		{PushRegistrationError(7), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PushRegistrationError(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
