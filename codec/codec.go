// Package codec centralizes record encoding.
//
// Snapshots store the codec name in their envelope, so a region written with
// one codec is always read back with the same one. Changing the default only
// affects newly written snapshots.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by self-describing persistence formats that store the codec
// name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "binary":
		return Binary{}, true
	default:
		return nil, false
	}
}

// Default is the default codec used by the library.
var Default Codec = Binary{}
