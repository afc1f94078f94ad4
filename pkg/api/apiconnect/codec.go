// Package apiconnect wires the splitledger.v1 services to connect handlers
// and clients.
//
// Messages travel as JSON. Handlers and clients built here register the
// JSON codec themselves, so callers never pass codec options.
package apiconnect

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// ServicePrefix is the path prefix shared by every procedure.
const ServicePrefix = "/splitledger.v1."

// jsonCodec marshals plain Go structs with encoding/json under the "json"
// name, replacing connect's protobuf-only default.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal %T: %w", message, err)
	}
	return nil
}

// WithJSON registers the JSON codec on a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
