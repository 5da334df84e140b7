package database

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Serializer is implemented by values that can write a binary encoding of
// themselves. The database does not interpret the encoding in any way.
type Serializer interface {
	Serialize(w io.Writer) error
}

// Deserializer is implemented by values that can read their binary encoding.
type Deserializer interface {
	Deserialize(r io.Reader) error
}

// PutEncoded serializes the given value and puts it under the given key.
// A serialization failure is reported as ErrMalformedData, distinctly from
// any engine fault the subsequent Put may produce.
func PutEncoded(accessor DataAccessor, key *Key, value Serializer) error {
	buffer := &bytes.Buffer{}
	err := value.Serialize(buffer)
	if err != nil {
		return errors.Wrapf(ErrMalformedData, "could not serialize value for key %s: %s", key, err)
	}

	return accessor.Put(key, buffer.Bytes())
}

// GetDecoded gets the value for the given key and deserializes it into value.
// A missing key is reported via found=false; a value that fails to decode is
// reported as ErrMalformedData.
func GetDecoded(accessor DataAccessor, key *Key, value Deserializer) (found bool, err error) {
	return GetDecodedPrefix(accessor, key, value, 0)
}

// GetDecodedPrefix behaves like GetDecoded but deserializes only the first
// prefixLength bytes of the stored value. prefixLength of 0 decodes the whole
// value. This is only valid when the target type's fields occupy a known
// fixed-size leading region of the encoding; truncating across a
// variable-length field makes the decode fail as malformed.
func GetDecodedPrefix(accessor DataAccessor, key *Key, value Deserializer, prefixLength int) (found bool, err error) {
	data, found, err := accessor.Get(key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	if prefixLength > 0 {
		if prefixLength > len(data) {
			return false, errors.Wrapf(ErrMalformedData,
				"value for key %s is %d bytes, shorter than the requested %d-byte prefix",
				key, len(data), prefixLength)
		}
		data = data[:prefixLength]
	}

	err = value.Deserialize(bytes.NewReader(data))
	if err != nil {
		return false, errors.Wrapf(ErrMalformedData, "could not deserialize value for key %s: %s", key, err)
	}
	return true, nil
}

// Require gets the value for the given key, converting absence into an
// explicit ErrNotFound for call sites that require the key to be present.
func Require(accessor DataAccessor, key *Key) ([]byte, error) {
	data, found, err := accessor.Get(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "key %s not found", key)
	}
	return data, nil
}

// RequireDecoded behaves like GetDecoded, converting absence into an
// explicit ErrNotFound.
func RequireDecoded(accessor DataAccessor, key *Key, value Deserializer) error {
	found, err := GetDecoded(accessor, key, value)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "key %s not found", key)
	}
	return nil
}
