package textsecure

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Envelope is one message as queued by the server for this device.
type Envelope struct {
	Type          MessageType
	Relay         string
	Timestamp     uint64
	Source        string
	SourceDevice  uint32
	LegacyMessage []byte
	Content       []byte
}

// AcknowledgePath returns the path that acknowledges delivery of the envelope.
func (e *Envelope) AcknowledgePath() string {
	return AcknowledgeMessagePath(e.Source, e.Timestamp)
}

// MessageBatch is the decoded body of a GET on MessagesAPI.
type MessageBatch struct {
	Envelopes []*Envelope
	// More is set when the server holds further messages; fetch again.
	More bool
	// Skipped counts envelopes dropped because a required field was missing.
	Skipped int
}

// wireEnvelope keeps every field optional so missing ones can be detected.
type wireEnvelope struct {
	Type         *MessageType `json:"type"`
	Relay        *string      `json:"relay"`
	Timestamp    *uint64      `json:"timestamp"`
	Source       *string      `json:"source"`
	SourceDevice *uint32      `json:"sourceDevice"`
	Message      *string      `json:"message"`
	Content      *string      `json:"content"`
}

type wireMessages struct {
	Messages []json.RawMessage `json:"messages"`
	More     json.RawMessage   `json:"more"`
}

// ParseMessagesResponse decodes a message list returned by the server.
//
// The body must be an object with a "messages" list of objects; any other
// element rejects the whole response. Envelopes without a type, timestamp,
// source or source device are skipped. Envelope types this
// client does not know decode as UnknownMessageType. A missing or non-boolean
// "more" field means there are no further messages.
func ParseMessagesResponse(data []byte) (*MessageBatch, error) {
	return parseMessagesResponse(data, nil)
}

// ParseMessagesResponseWithMetrics is ParseMessagesResponse reporting each
// decoded envelope type to m.
func ParseMessagesResponseWithMetrics(data []byte, m MetricsCollector) (*MessageBatch, error) {
	return parseMessagesResponse(data, m)
}

func parseMessagesResponse(data []byte, m MetricsCollector) (*MessageBatch, error) {
	var wire wireMessages
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if wire.Messages == nil {
		return nil, fmt.Errorf("%w: messages list missing", ErrMalformedResponse)
	}

	for i, raw := range wire.Messages {
		if !isJSONObject(raw) {
			return nil, fmt.Errorf("%w: messages[%d] is not an object", ErrMalformedResponse, i)
		}
	}

	batch := &MessageBatch{Envelopes: make([]*Envelope, 0, len(wire.Messages))}
	for i, raw := range wire.Messages {
		env, err := buildEnvelope(raw)
		if err != nil {
			log.WithField("index", i).Debugf("skipping envelope: %v", err)
			batch.Skipped++
			if m != nil {
				m.IncrementError("envelope")
			}
			continue
		}
		if m != nil {
			m.IncrementMessageType(env.Type)
		}
		batch.Envelopes = append(batch.Envelopes, env)
	}

	if err := json.Unmarshal(wire.More, &batch.More); err != nil {
		if len(wire.More) != 0 {
			Debug("more field was not a bool, assuming no more messages")
		}
		batch.More = false
	}

	Debug("decoded %d envelopes (%d skipped, more=%t)", len(batch.Envelopes), batch.Skipped, batch.More)
	return batch, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func buildEnvelope(raw json.RawMessage) (*Envelope, error) {
	var w wireEnvelope
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}

	switch {
	case w.Type == nil:
		return nil, fmt.Errorf("%w: envelope has no type", ErrMalformedResponse)
	case w.Timestamp == nil:
		return nil, fmt.Errorf("%w: envelope has no timestamp", ErrMalformedResponse)
	case w.Source == nil:
		return nil, fmt.Errorf("%w: envelope has no source", ErrMalformedResponse)
	case w.SourceDevice == nil:
		return nil, fmt.Errorf("%w: envelope has no sourceDevice", ErrMalformedResponse)
	}

	env := &Envelope{
		Type:         *w.Type,
		Timestamp:    *w.Timestamp,
		Source:       *w.Source,
		SourceDevice: *w.SourceDevice,
	}
	if w.Relay != nil {
		env.Relay = *w.Relay
	}
	// Undecodable bodies are dropped, the envelope itself is kept.
	if w.Message != nil {
		if b, err := base64.StdEncoding.DecodeString(*w.Message); err == nil {
			env.LegacyMessage = b
		} else {
			Debug("envelope from %s has undecodable legacy message", env.Source)
		}
	}
	if w.Content != nil {
		if b, err := base64.StdEncoding.DecodeString(*w.Content); err == nil {
			env.Content = b
		} else {
			Debug("envelope from %s has undecodable content", env.Source)
		}
	}
	return env, nil
}
