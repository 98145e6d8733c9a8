package types

import (
	"encoding/json"
	fmt "fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// jsonValue is a collections value codec that persists values as JSON. The
// module's state types are hand-written structs, so this takes the place the
// protobuf CollValue codec fills for generated types.
type jsonValue[T any] struct {
	typeName string
}

// NewJSONValueCodec returns a collections value codec that stores T as JSON.
func NewJSONValueCodec[T any](typeName string) collcodec.ValueCodec[T] {
	return jsonValue[T]{typeName: typeName}
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", c.typeName, err)
	}
	return value, nil
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValue[T]) ValueType() string {
	return c.typeName
}
