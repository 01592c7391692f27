package adapter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// marshalYAML encodes v with a two-space indent. At the default indent of
// four, yaml.v3 writes block scalars inside sequence items with an
// indentation indicator that decoders resolve two columns too deep, which
// strips leading spaces from method code.
func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
