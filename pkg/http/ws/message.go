package ws

import "encoding/json"

// MessageType constants for the quiz WebSocket protocol.
const (
	// Client -> Server
	TypeNextQuestion = "next_question"
	TypePing         = "ping"

	// Server -> Client
	TypeQuestion = "question"
	TypeQuizOver = "quiz_over"
	TypeError    = "error"
	TypePong     = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage marshals payload into a typed message answering requestID.
func NewMessage(msgType, requestID string, payload any) (Message, error) {
	msg := Message{Type: msgType, RequestID: requestID}
	if payload == nil {
		return msg, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	msg.Payload = raw
	return msg, nil
}
