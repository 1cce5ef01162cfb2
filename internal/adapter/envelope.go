// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
)

// errorEnvelope is one known shape of a backend error body.
type errorEnvelope struct {
	name    string
	extract func(body map[string]json.RawMessage) (string, bool)
}

// errorEnvelopes lists the error bodies the backend has been seen to return,
// tried in order. The first non-empty string wins. Both the flat "error"
// and the nested "error.message" forms exist because older backend builds
// used the latter; drop it once no deployed backend emits it.
var errorEnvelopes = []errorEnvelope{
	{name: "message", extract: func(body map[string]json.RawMessage) (string, bool) {
		return stringField(body, "message")
	}},
	{name: "error", extract: func(body map[string]json.RawMessage) (string, bool) {
		return stringField(body, "error")
	}},
	{name: "error.message", extract: func(body map[string]json.RawMessage) (string, bool) {
		raw, ok := body["error"]
		if !ok {
			return "", false
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err != nil {
			return "", false
		}
		return stringField(nested, "message")
	}},
}

// serverMessage extracts the user-facing message from an error body.
func serverMessage(body []byte) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", false
	}

	for _, envelope := range errorEnvelopes {
		if msg, ok := envelope.extract(fields); ok {
			return msg, true
		}
	}
	return "", false
}

func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := body[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}
