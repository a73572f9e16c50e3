package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"event-discovery-app/dto"
	"event-discovery-app/dto/req"
	"event-discovery-app/usecase"
)

// WebSocketHandler fans stored chat messages out to every listener of an
// event's discussion room.
type WebSocketHandler struct {
	*logrus.Logger
	sync.Mutex
	usecase.ChatUsecase
	Rooms     map[string]map[*websocket.Conn]bool // eventId -> connected clients
	Broadcast chan dto.BroadcastMessage
	done      chan struct{}
}

func NewWebSocketHandler(logger *logrus.Logger, chatUsecase usecase.ChatUsecase) *WebSocketHandler {
	handler := &WebSocketHandler{
		Logger:      logger,
		ChatUsecase: chatUsecase,
		Rooms:       make(map[string]map[*websocket.Conn]bool),
		Broadcast:   make(chan dto.BroadcastMessage),
		done:        make(chan struct{}),
	}
	go handler.runBroadcast()
	return handler
}

// Close stops the broadcast goroutine.
func (handler *WebSocketHandler) Close() {
	close(handler.done)
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()

	eventID := c.Params("eventId")
	senderID := c.Query("senderId")

	if eventID == "" || senderID == "" {
		handler.Logger.Warn("Invalid connection request: missing eventId or senderId")
		c.Close()
		return
	}

	if err := handler.ChatUsecase.EventExists(ctx, eventID); err != nil {
		handler.Logger.Errorf("Failed to join event room: %v", err)
		c.Close()
		return
	}

	handler.registerClient(eventID, c)
	defer func() {
		handler.removeClient(eventID, c)
		c.Close()
	}()

	for {
		var payload req.ChatMessageRequest
		if err := c.ReadJSON(&payload); err != nil {
			handler.Logger.Warnf("Read error: %v", err)
			break
		}
		payload.EventID = eventID

		broadcastMsg, err := handler.ChatUsecase.SendMessage(ctx, senderID, &payload)
		if err != nil {
			handler.Logger.Errorf("Failed to save message: %v", err)
			continue
		}

		handler.Broadcast <- broadcastMsg
	}
}

func (handler *WebSocketHandler) registerClient(eventID string, conn *websocket.Conn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if handler.Rooms[eventID] == nil {
		handler.Rooms[eventID] = make(map[*websocket.Conn]bool)
	}
	handler.Rooms[eventID][conn] = true
	handler.Logger.Infof("Client joined event room: %s (Total: %d)", eventID, len(handler.Rooms[eventID]))
}

func (handler *WebSocketHandler) removeClient(eventID string, conn *websocket.Conn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if clients, ok := handler.Rooms[eventID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(handler.Rooms, eventID)
		}
	}
	handler.Logger.Infof("Client left event room: %s", eventID)
}

func (handler *WebSocketHandler) runBroadcast() {
	for {
		var msg dto.BroadcastMessage
		select {
		case <-handler.done:
			return
		case msg = <-handler.Broadcast:
		}
		handler.Mutex.Lock()
		clients := handler.Rooms[msg.EventID]
		for conn := range clients {
			if err := conn.WriteJSON(msg); err != nil {
				handler.Logger.Warnf("Error broadcasting message: %v", err)
				conn.Close()
				delete(clients, conn)
			}
		}
		handler.Mutex.Unlock()
	}
}
