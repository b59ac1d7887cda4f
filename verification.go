package textsecure

import (
	"fmt"
	"strings"
)

// String returns the transport name used in verification requests.
func (v VerificationTransport) String() string {
	switch v {
	case SMSVerification:
		return "sms"
	case VoiceVerification:
		return "voice"
	default:
		return "unknown"
	}
}

// ParseVerificationTransport resolves "sms" or "voice", case-insensitively.
func ParseVerificationTransport(s string) (VerificationTransport, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sms":
		return SMSVerification, nil
	case "voice":
		return VoiceVerification, nil
	default:
		return 0, fmt.Errorf("%w: verification transport %q", ErrInvalidArgument, s)
	}
}
