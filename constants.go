package textsecure

import "time"

// TextSecure Server Constants
//
// This file contains the symbolic constants a client needs to talk to a
// TextSecure-compatible message server: envelope type tags, versioned REST
// route templates and the push-registration failure kinds.
//
// Every value here is fixed at compile time. Nothing in this package mutates
// them, so they may be read from any number of goroutines without locking.

// MessageType tells the receiver how an envelope payload must be interpreted.
type MessageType int32

// Envelope Type Constants
// Wire values of the "type" field of a server envelope.
const (
	UnknownMessageType     MessageType = 0
	EncryptedMessageType   MessageType = 1 // ciphertext for an established session
	IgnoreOnIOSMessageType MessageType = 2 // prekey bundle on other platforms, irrelevant for this client
	PreKeyMessageType      MessageType = 3 // ciphertext that also establishes a session
	UnencryptedMessageType MessageType = 4 // plaintext, e.g. server receipts
)

// maxMessageType is the highest envelope type this client understands.
const maxMessageType = UnencryptedMessageType

// HTTP Timeout Constants
const (
	// HTTPTimeoutSeconds is the default per-request timeout, in seconds.
	HTTPTimeoutSeconds = 10

	// DefaultHTTPTimeout is HTTPTimeoutSeconds as a time.Duration.
	DefaultHTTPTimeout = HTTPTimeoutSeconds * time.Second
)

// Server API Route Constants
//
// Paths are relative to the server base URL. Templates ending in Format
// carry exactly one %s placeholder for a caller supplied identifier.
// AttributesAPI is a suffix that is appended to AccountsAPI.
const (
	GeneralAPI                  = "v1"
	AccountsAPI                 = "v1/accounts"
	AttributesAPI               = "/attributes/"
	MessagesAPI                 = "v1/messages/"
	KeysAPI                     = "v2/keys"
	SignedKeysAPI               = "v2/keys/signed"
	DirectoryAPI                = "v1/directory"
	AttachmentsAPI              = "v1/attachments"
	DeviceProvisioningCodeAPI   = "v1/devices/provisioning/code"
	DeviceProvisioningAPIFormat = "v1/provisioning/%s"
	DevicesAPIFormat            = "v1/devices/%s"
)

// routePlaceholder is the only substitution verb route templates use.
const routePlaceholder = "%s"

// PushRegistrationError classifies why a push-registration attempt failed.
type PushRegistrationError int

// Push Registration Error Constants
const (
	PushRegistrationErrorNetwork        PushRegistrationError = iota // server unreachable or timed out
	PushRegistrationErrorAuthentication                              // credentials rejected
	PushRegistrationErrorRequest                                     // request malformed or refused
)

// VerificationTransport selects how the server delivers a verification code.
type VerificationTransport int

// Verification Transport Constants
const (
	SMSVerification   VerificationTransport = iota // code sent by text message
	VoiceVerification                              // code read out in a phone call
)

// Configuration Property Keys
// Keys accepted by Config.SetProperty and by configuration files.
const (
	PropServer    = "textsecure.server"
	PropTimeout   = "textsecure.timeout"
	PropUserAgent = "textsecure.userAgent"
)

// DefaultUserAgent is sent when no textsecure.userAgent property is set.
const DefaultUserAgent = "go-textsecure"
