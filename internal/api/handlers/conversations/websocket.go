package conversations

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mfkayan044/securedrive-sub000/internal/service/messaging/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Событие, которое получает клиент WebSocket
const eventMessage = "message"

// Event конверт WebSocket сообщения
type Event struct {
	Type string                  `json:"type"`
	Data *models.MessageResponse `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin проверяет шлюз, сюда доходят только аутентифицированные запросы
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Stream GET /api/v1/conversations/{reservationId}/ws
// Доступ проверяется до апгрейда, чтобы отвечать обычными HTTP ошибками
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	reservationID, actor, ok := h.target(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := h.service.Subscribe(ctx, reservationID, actor)
	if err != nil {
		h.respondError(w, "GET /conversations/{id}/ws", err)
		return
	}
	defer sub.Close()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /conversations/{id}/ws - Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("GET /conversations/{id}/ws - %s=%d connected to reservation id=%d", actor.Role, actor.UserID, reservationID)

	// Клиент ничего не присылает, чтение нужно только для pong и обнаружения закрытия
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Warn("GET /conversations/{id}/ws - Read error: %v", err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-sub.Messages():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(Event{Type: eventMessage, Data: models.FromDomainMessage(msg)}); err != nil {
				h.logger.Warn("GET /conversations/{id}/ws - Write failed: %v", err)
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
