package seqkit_test

import (
	"encoding/json"
	"errors"
	"testing"

	"go.llib.dev/seqkit"
	"go.llib.dev/testcase/assert"
)

func TestJSON(t *testing.T) {
	for _, seq := range []seqkit.Sequence[int]{
		seqkit.Of(1, 2, 3),
		seqkit.List(1, 2, 3),
		seqkit.Range(1, 4),
		seqkit.RepeatN(seqkit.Of(3, 1, 2), 1, 3),
	} {
		data, err := json.Marshal(seq)
		assert.NoError(t, err)
		assert.Equal(t, `[1,2,3]`, string(data))
	}

	type dto struct {
		Tags seqkit.Sequence[string] `json:"tags"`
	}
	data, err := json.Marshal(dto{Tags: seqkit.List("a", "b")})
	assert.NoError(t, err)
	assert.Equal(t, `{"tags":["a","b"]}`, string(data))

	_, err = json.Marshal(naturals())
	assert.True(t, errors.Is(err, seqkit.ErrCapacityExceeded))
}

func TestParseJSON(t *testing.T) {
	seq, err := seqkit.ParseJSON[string]([]byte(`["x","y"]`))
	assert.NoError(t, err)
	assert.True(t, seqkit.Equal(seq, seqkit.Of("x", "y")))

	seq, err = seqkit.ParseJSON[string]([]byte(`[]`))
	assert.NoError(t, err)
	assert.True(t, seq.IsEmpty())

	_, err = seqkit.ParseJSON[int]([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
}
