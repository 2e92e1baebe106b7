package stream

// Decodable is the read-side capability: a type with a fixed-length
// binary form that can reconstruct itself from exactly Size bytes.
// Size must not depend on the contents being decoded.
type Decodable interface {
	// Size returns the encoded length in bytes.
	Size() int
	// DecodeBinary decodes the value from data, which holds exactly
	// Size bytes.
	DecodeBinary(data []byte) error
}

// Encodable is the write-side capability: a value that can render
// itself to a byte sequence. The two capabilities are independent, a
// type used only for reading need not implement Encodable and vice
// versa.
type Encodable interface {
	// EncodeBinary renders the value to its binary form.
	EncodeBinary() ([]byte, error)
}

// Serializable is implemented by types that round-trip through their
// binary form.
type Serializable interface {
	Encodable
	Decodable
}
