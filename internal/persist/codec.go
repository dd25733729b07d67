package persist

import (
	"encoding/json"
	"fmt"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

const FormatVersion = 1

type envelope struct {
	Version   int          `json:"version"`
	State     *store.State `json:"state,omitempty"`
	Encrypted string       `json:"encrypted,omitempty"`
}

// Encode serialises a snapshot. Dates are written as RFC 3339 strings with
// nanoseconds. When at-rest encryption is configured the state is sealed and
// only the version stays readable.
func Encode(st store.State) ([]byte, error) {
	plain, err := json.Marshal(envelope{Version: FormatVersion, State: &st})
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	if !config.CryptoEnabled() {
		return plain, nil
	}
	sealed, err := config.Encrypt(string(plain))
	if err != nil {
		return nil, fmt.Errorf("encrypt state: %w", err)
	}
	return json.Marshal(envelope{Version: FormatVersion, Encrypted: sealed})
}

func Decode(data []byte) (store.State, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return store.State{}, fmt.Errorf("decode state: %w", err)
	}
	if env.Version > FormatVersion {
		return store.State{}, fmt.Errorf("decode state: unsupported version %d", env.Version)
	}
	if env.Encrypted != "" {
		plain, err := config.Decrypt(env.Encrypted)
		if err != nil {
			return store.State{}, fmt.Errorf("decrypt state: %w", err)
		}
		env = envelope{}
		if err := json.Unmarshal([]byte(plain), &env); err != nil {
			return store.State{}, fmt.Errorf("decode state: %w", err)
		}
	}
	if env.State == nil {
		return store.InitialState(), nil
	}
	return *env.State, nil
}
