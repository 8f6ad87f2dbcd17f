package trivia

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	ws "github.com/gokatarajesh/trivia-api/pkg/http/ws"
)

// WSHandler plays quizzes over a WebSocket. Every next_question message carries the
// full quiz state, exactly like POST /quizzes, so the connection holds no session.
type WSHandler struct {
	svc      *Service
	upgrader *websocket.Upgrader
	logger   zerolog.Logger
}

func NewWSHandler(svc *Service, upgrader *websocket.Upgrader, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		svc:      svc,
		upgrader: upgrader,
		logger:   logger.With().Str("component", "quiz_ws").Logger(),
	}
}

// HandleWebSocket upgrades GET /ws/quizzes and serves messages until the client leaves.
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := ws.NewConnection(conn, h.logger)
	go c.WritePump()
	defer c.Close()

	ctx := r.Context()
	c.ReadPump(func(msg ws.Message) error {
		reply, err := h.handleMessage(ctx, msg)
		if err != nil {
			return err
		}
		return c.Send(reply)
	})
}

func (h *WSHandler) handleMessage(ctx context.Context, msg ws.Message) (ws.Message, error) {
	switch msg.Type {
	case ws.TypePing:
		return ws.NewMessage(ws.TypePong, msg.RequestID, nil)

	case ws.TypeNextQuestion:
		req, err := DecodeQuizRequest(bytes.NewReader(msg.Payload))
		if err != nil {
			return errorMessage(msg.RequestID, KindOf(err).Status())
		}
		result, err := h.svc.NextQuizQuestion(ctx, req)
		if err != nil {
			return errorMessage(msg.RequestID, KindOf(err).Status())
		}
		msgType := ws.TypeQuestion
		if result.Exhausted() {
			msgType = ws.TypeQuizOver
		}
		return ws.NewMessage(msgType, msg.RequestID, result)

	default:
		h.logger.Debug().Str("type", msg.Type).Msg("unknown message type")
		return errorMessage(msg.RequestID, http.StatusBadRequest)
	}
}

func errorMessage(requestID string, status int) (ws.Message, error) {
	return ws.NewMessage(ws.TypeError, requestID, httperrors.New(status))
}
