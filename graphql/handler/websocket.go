/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/botobag/gqlsyntax/graphql"
	"github.com/botobag/gqlsyntax/graphql/request"
	"github.com/botobag/gqlsyntax/log"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

// Subprotocols spoken by the WebSocket handler
const (
	// https://github.com/enisdenjo/graphql-ws/blob/master/PROTOCOL.md
	SubprotocolGraphQLTransportWS = "graphql-transport-ws"

	// https://github.com/apollographql/subscriptions-transport-ws/blob/master/PROTOCOL.md
	SubprotocolGraphQLWS = "graphql-ws"
)

const defaultWriteTimeout = 10 * time.Second

// wsHandlerConfig contains configuration for a wsHandler.
type wsHandlerConfig struct {
	middlewares  []RequestMiddleware
	logger       log.FieldLogger
	checkOrigin  func(r *http.Request) bool
	writeTimeout time.Duration
}

// WebSocketOption configures the WebSocket handler.
type WebSocketOption func(config *wsHandlerConfig)

// WebSocketMiddlewares appends middlewares to be applied before executing operations.
func WebSocketMiddlewares(middlewares ...RequestMiddleware) WebSocketOption {
	return func(config *wsHandlerConfig) {
		config.middlewares = append(config.middlewares, middlewares...)
	}
}

// WebSocketLogger sets the logger for the handler.
func WebSocketLogger(logger log.FieldLogger) WebSocketOption {
	return func(config *wsHandlerConfig) {
		config.logger = logger
	}
}

// CheckOrigin sets the function that decides whether to accept a cross-origin upgrade. By default,
// requests are accepted when the Origin header is absent or matches the Host.
func CheckOrigin(checkOrigin func(r *http.Request) bool) WebSocketOption {
	return func(config *wsHandlerConfig) {
		config.checkOrigin = checkOrigin
	}
}

// wsHandler serves GraphQL over WebSocket. Each operation is answered with a single result which
// is sufficient for queries and mutations; Subscriptions are served as an operation that emits
// exactly one event.
type wsHandler struct {
	*LLHandler
	upgrader     websocket.Upgrader
	logger       log.FieldLogger
	writeTimeout time.Duration
}

// NewWebSocketHandler creates a http.Handler that upgrades connections to WebSocket and serves
// GraphQL operations sent over them.
func NewWebSocketHandler(parser *request.Parser, executor Executor, opts ...WebSocketOption) (http.Handler, error) {
	config := wsHandlerConfig{
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&config)
	}

	baseHandler, err := NewLLHandler(&LLConfig{
		Parser:      parser,
		Executor:    executor,
		Middlewares: config.middlewares,
	})
	if err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = log.Get()
	}

	return &wsHandler{
		LLHandler: baseHandler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Subprotocols:    []string{SubprotocolGraphQLTransportWS, SubprotocolGraphQLWS},
			CheckOrigin:     config.checkOrigin,
		},
		logger:       log.WithPrefix(logger, "handler"),
		writeTimeout: config.writeTimeout,
	}, nil
}

func (h *wsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has replied to the client.
		h.logger.WithError(err).Debug("unable to upgrade to websocket")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	session := &wsSession{
		handler: h,
		conn:    conn,
		logger:  h.logger.WithField("subprotocol", conn.Subprotocol()),
		ctx:     ctx,
	}
	session.run()
	cancel()
	session.wg.Wait()
	conn.Close()
}

// wsSession serves one WebSocket connection.
type wsSession struct {
	handler *wsHandler
	conn    *websocket.Conn
	logger  log.FieldLogger
	ctx     context.Context

	// Serializes writes to conn.
	writeMu sync.Mutex

	// Tracks operations in flight.
	wg sync.WaitGroup
}

func (s *wsSession) run() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Debug("websocket read failed")
			}
			return
		}

		message, err := request.ParseMessage(data)
		if err != nil {
			s.writeError("", err)
			continue
		}

		switch message.Type {
		case request.MessageConnectionInit:
			s.write(&request.Message{Type: request.MessageConnectionAck})

		case request.MessagePing:
			s.write(&request.Message{Type: request.MessagePong})

		case request.MessagePong:
			// Heartbeat; nothing to do.

		case request.MessageConnectionTerminate:
			return

		case request.MessageSubscribe, request.MessageStart:
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.serveOperation(message)
			}()

		case request.MessageComplete, request.MessageStop:
			// Operations complete right after their only result.

		default:
			s.writeError(message.ID, request.NewError(request.InvalidMessageStructure,
				"unknown message type %q", message.Type))
		}
	}
}

// resultMessageType returns the type of message for carrying a result to the operation started by
// the given message type.
func resultMessageType(startType string) string {
	if startType == request.MessageStart {
		return request.MessageData
	}
	return request.MessageNext
}

func (s *wsSession) serveOperation(message *request.Message) {
	parsed, err := s.handler.Parser().ParseMessageRequest(s.ctx, message)
	if err != nil {
		s.writeError(message.ID, err)
		return
	}

	result := s.handler.Serve(&Request{
		Ctx:    s.ctx,
		Parsed: parsed,
	})

	s.writeResult(message.ID, resultMessageType(message.Type), result)
	s.write(&request.Message{
		Type: request.MessageComplete,
		ID:   message.ID,
	})
}

func (s *wsSession) writeResult(id string, messageType string, result *Result) {
	payload, err := result.MarshalJSON()
	if err != nil {
		s.logger.WithError(err).Error("unable to encode result")
		return
	}
	s.writeRaw(id, messageType, payload)
}

func (s *wsSession) writeError(id string, err error) {
	_, gqlErr := PresentError(err)

	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)
	stream.WriteVal([]*graphql.Error{gqlErr})
	if stream.Error != nil {
		s.logger.WithError(stream.Error).Error("unable to encode error")
		return
	}

	s.writeRaw(id, request.MessageError, stream.Buffer())
}

func (s *wsSession) write(message *request.Message) {
	s.writeRaw(message.ID, message.Type, nil)
}

// writeRaw sends a message with the given payload in JSON. payload is omitted if it is nil.
func (s *wsSession) writeRaw(id string, messageType string, payload []byte) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("type")
	stream.WriteString(messageType)
	if len(id) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("id")
		stream.WriteString(id)
	}
	if payload != nil {
		stream.WriteMore()
		stream.WriteObjectField("payload")
		stream.Write(payload)
	}
	stream.WriteObjectEnd()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.handler.writeTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, stream.Buffer()); err != nil {
		s.logger.WithError(err).WithField("type", messageType).Debug("websocket write failed")
	}
}
