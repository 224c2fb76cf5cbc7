package predictor

import (
	"encoding/json"
	"fmt"
)

// envelope wraps a serialized predictor with its algorithm tag so the blob
// stays opaque to everything outside this package.
type envelope struct {
	Algorithm string          `json:"algorithm"`
	Params    json.RawMessage `json:"params"`
}

// Marshal serializes a predictor into an opaque blob.
func Marshal(p Predictor) (json.RawMessage, error) {
	switch m := p.(type) {
	case *Ridge:
		params, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		return json.Marshal(envelope{Algorithm: AlgorithmRidge, Params: params})
	default:
		return nil, fmt.Errorf("unknown predictor type %T", p)
	}
}

// Unmarshal reconstructs a predictor from a blob produced by Marshal.
func Unmarshal(blob json.RawMessage) (Predictor, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("failed to decode predictor blob: %w", err)
	}

	switch env.Algorithm {
	case AlgorithmRidge:
		var m Ridge
		if err := json.Unmarshal(env.Params, &m); err != nil {
			return nil, fmt.Errorf("failed to decode ridge params: %w", err)
		}
		return &m, nil
	default:
		return nil, fmt.Errorf("unknown predictor algorithm %q", env.Algorithm)
	}
}

// Algorithm returns the tag a predictor serializes under.
func Algorithm(p Predictor) string {
	switch p.(type) {
	case *Ridge:
		return AlgorithmRidge
	default:
		return "unknown"
	}
}
