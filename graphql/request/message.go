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

package request

import (
	"context"

	"github.com/botobag/gqlsyntax/jsonvalue"
)

// Message is an envelope of GraphQL over WebSocket protocols (graphql-ws and
// graphql-transport-ws).
type Message struct {
	Type string

	// ID of the operation the message belongs to; Number ids are kept in their literal text. Empty
	// for connection-level messages without id.
	ID string

	// Payload is nil when the message has no payload.
	Payload *jsonvalue.Value
}

// Message types
const (
	MessageConnectionInit      = "connection_init"
	MessageConnectionAck       = "connection_ack"
	MessageConnectionTerminate = "connection_terminate"
	MessagePing                = "ping"
	MessagePong                = "pong"
	MessageSubscribe           = "subscribe"
	MessageStart               = "start"
	MessageNext                = "next"
	MessageData                = "data"
	MessageError               = "error"
	MessageComplete            = "complete"
	MessageStop                = "stop"
)

// IsConnectionMessage returns true for message types that are about the connection rather than an
// operation and thus carry no id.
func IsConnectionMessage(messageType string) bool {
	switch messageType {
	case MessageConnectionInit,
		MessageConnectionAck,
		MessageConnectionTerminate,
		MessagePing,
		MessagePong:
		return true
	}
	return false
}

// ParseMessage parses a socket message. The message must have a type and, unless it is a
// connection-level message, an id.
func ParseMessage(body []byte) (*Message, error) {
	message, err := parseMessage(body)
	if err != nil {
		return nil, err
	}
	if len(message.ID) == 0 && !IsConnectionMessage(message.Type) {
		return nil, NewError(InvalidMessageStructure, `message of type "%s" must have an id`, message.Type)
	}
	return message, nil
}

// ParseMessageWithoutID is like ParseMessage but never requires an id.
func ParseMessageWithoutID(body []byte) (*Message, error) {
	message, err := parseMessage(body)
	if err != nil {
		return nil, err
	}
	return message, nil
}

func parseMessage(body []byte) (*Message, *Error) {
	value, err := jsonvalue.Parse(body)
	if err != nil {
		return nil, wrapError(InvalidMessageStructure, err, "message is not valid JSON")
	}
	if value.Kind() != jsonvalue.Map {
		return nil, NewError(InvalidMessageStructure, "message must be an object, found %s", value.Kind())
	}

	message := &Message{}

	t, exists := value.Get("type")
	if !exists {
		return nil, NewError(InvalidMessageStructure, `message must have a "type"`)
	}
	messageType, ok := t.Str()
	if !ok || len(messageType) == 0 {
		return nil, NewError(InvalidMessageStructure, `"type" must be a non-empty string`)
	}
	message.Type = messageType

	if id, exists := value.Get("id"); exists && !id.IsNull() {
		switch id.Kind() {
		case jsonvalue.String:
			message.ID, _ = id.Str()
		case jsonvalue.Number:
			n, _ := id.Number()
			message.ID = n.String()
		default:
			return nil, NewError(InvalidMessageStructure, `"id" must be a string or a number, found %s`, id.Kind())
		}
	}

	if payload, exists := value.Get("payload"); exists {
		message.Payload = payload
	}

	return message, nil
}

// ParseMessageRequest parses the payload of a subscribe (or start) message as a request object.
func (p *Parser) ParseMessageRequest(ctx context.Context, message *Message) (*ParsedRequest, error) {
	if message.Payload.Kind() != jsonvalue.Map {
		return nil, NewError(InvalidMessageStructure, "payload of %s message must be an object", message.Type)
	}

	result, err := p.parseObject(ctx, message.Payload)
	if err != nil {
		return nil, err
	}
	return result, nil
}
