package gamedata

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// readTable decodes the embedded YAML table name into T.
func readTable[T any](name string) (T, error) {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return decodeTable[T](name, data)
}

// decodeTable parses one YAML document. Keys matching no field of T are an
// error, as is an empty document.
func decodeTable[T any](name string, data []byte) (T, error) {
	var table T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return table, fmt.Errorf("%s: empty table", name)
		}
		return table, fmt.Errorf("%s: %w", name, err)
	}
	return table, nil
}
