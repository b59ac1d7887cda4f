package textsecure

// getMessageTypeName returns a human-readable name for envelope types.
// This is useful for logging received envelopes.
func getMessageTypeName(msgType MessageType) string {
	switch msgType {
	case UnknownMessageType:
		return "Unknown"
	case EncryptedMessageType:
		return "Encrypted"
	case IgnoreOnIOSMessageType:
		return "IgnoreOnIOS"
	case PreKeyMessageType:
		return "PreKey"
	case UnencryptedMessageType:
		return "Unencrypted"
	default:
		return "Unknown"
	}
}

// getPushRegistrationErrorName returns a human-readable name for push
// registration failure kinds.
func getPushRegistrationErrorName(kind PushRegistrationError) string {
	switch kind {
	case PushRegistrationErrorNetwork:
		return "network"
	case PushRegistrationErrorAuthentication:
		return "authentication"
	case PushRegistrationErrorRequest:
		return "request"
	default:
		return "invalid"
	}
}
