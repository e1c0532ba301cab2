package avro

import (
	"fmt"

	"github.com/linkedin/goavro/v2"

	domain "bannerstore/internal/domain/order"
)

// Codec converts order events to and from Avro binary.
type Codec struct {
	codec *goavro.Codec
}

func NewCodec() (*Codec, error) {
	codec, err := goavro.NewCodec(OrderEventSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Codec{codec: codec}, nil
}

func (c *Codec) Encode(evt domain.Event) ([]byte, error) {
	native, err := toNative(evt)
	if err != nil {
		return nil, err
	}
	binary, err := c.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

func (c *Codec) Decode(data []byte) (domain.Event, error) {
	native, _, err := c.codec.NativeFromBinary(data)
	if err != nil {
		return domain.Event{}, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	record, ok := native.(map[string]interface{})
	if !ok {
		return domain.Event{}, fmt.Errorf("avro payload is not a record")
	}
	return fromNative(record)
}
