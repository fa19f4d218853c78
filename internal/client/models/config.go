package models

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// RemoteConfig is the server-provided configuration. It is opaque to the
// client and always replaced as a whole.
type RemoteConfig struct {
	raw json.RawMessage
}

// NewRemoteConfig wraps a raw JSON document.
func NewRemoteConfig(raw []byte) RemoteConfig {
	return RemoteConfig{raw: bytes.Clone(raw)}
}

// Raw returns the JSON document as received.
func (c RemoteConfig) Raw() json.RawMessage {
	return c.raw
}

// IsZero reports whether no config has been loaded.
func (c RemoteConfig) IsZero() bool {
	return len(c.raw) == 0
}

// Get looks up a value by gjson path, e.g. "upload.maxSize".
func (c RemoteConfig) Get(path string) gjson.Result {
	return gjson.GetBytes(c.raw, path)
}

func (c RemoteConfig) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return c.raw, nil
}

func (c *RemoteConfig) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		c.raw = nil
		return nil
	}
	c.raw = bytes.Clone(b)
	return nil
}
