// Package bitmap implements the materialized accelerator of spec §4.5:
// a per-(tenant, subject, permission, resource_type) compressed bitmap
// over an integer resource-id space, kept warm by a write-through path
// for single-edge changes and a queued recompute path for anything
// that can touch many subjects at once.
package bitmap

import (
	"bytes"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// codecVersion is prepended to every serialized bitmap so a future
// format change can be detected at read time (spec §9 "serialization
// format must be versioned").
const codecVersion byte = 1

func encodeBitmap(b *roaring.Bitmap) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(codecVersion)

	if _, err := b.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("bitmap: encode: %w", err)
	}

	return buf.Bytes(), nil
}

func decodeBitmap(data []byte) (*roaring.Bitmap, error) {
	if len(data) == 0 {
		return roaring.New(), nil
	}

	if data[0] != codecVersion {
		return nil, fmt.Errorf("bitmap: unsupported codec version %d", data[0])
	}

	b := roaring.New()
	if _, err := b.ReadFrom(bytes.NewReader(data[1:])); err != nil {
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}

	return b, nil
}
