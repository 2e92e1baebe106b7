// Package testserdes contains test helpers for encoding/decoding
// round-trips of Serializable types.
package testserdes

import (
	"bytes"
	"testing"

	"github.com/pushfoo/seastream/pkg/stream"
	"github.com/stretchr/testify/require"
)

// EncodeDecodeBinary checks if expected stays the same after
// writing to and re-reading from an in-memory Stream.
func EncodeDecodeBinary(t *testing.T, expected stream.Encodable, actual stream.Decodable) {
	var buf bytes.Buffer
	s := stream.Wrap(&buf)

	n, err := s.WriteValue(expected)
	require.NoError(t, err)
	require.Equal(t, actual.Size(), n)

	require.NoError(t, s.ReadValue(actual))
	require.Equal(t, expected, actual)
}

// EncodeBinary serializes a to a byte slice.
func EncodeBinary(a stream.Encodable) ([]byte, error) {
	return a.EncodeBinary()
}

// DecodeBinary deserializes a from a byte slice.
func DecodeBinary(data []byte, a stream.Decodable) error {
	return a.DecodeBinary(data)
}
