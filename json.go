package seqkit

import (
	"bytes"

	"github.com/goccy/go-json"
)

// marshalJSON encodes a finite sequence as a JSON array.
func marshalJSON[E any](s Sequence[E]) ([]byte, error) {
	if knownInfinite(s) {
		return nil, ErrCapacityExceeded.F("an infinite sequence can't be encoded as JSON")
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	var i int
	for v := range Iter(s) {
		if 0 < i {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
		i++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// ParseJSON decodes a JSON array into an Array sequence.
func ParseJSON[E any](data []byte) (Sequence[E], error) {
	var vs []E
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}
	return FromSlice(vs), nil
}
