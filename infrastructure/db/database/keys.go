package database

import (
	"bytes"
	"encoding/binary"
)

// separator marks the namespace boundary between a bucket prefix and the
// identifier that follows it, so identifiers of arbitrary length cannot
// collide across record kinds sharing the flat key space.
var separator = []byte("/")

// Key is a helper type meant to combine prefix
// and keys into a single full key-value
// database key.
type Key struct {
	bucket *Bucket
	suffix []byte
}

// Bytes returns the full key.
func (k *Key) Bytes() []byte {
	bucketPath := k.bucket.Path()

	keyBytes := make([]byte, len(bucketPath)+len(k.suffix))
	copy(keyBytes, bucketPath)
	copy(keyBytes[len(bucketPath):], k.suffix)

	return keyBytes
}

func (k *Key) String() string {
	return string(k.Bytes())
}

// Bucket returns the bucket part of the key.
func (k *Key) Bucket() *Bucket {
	return k.bucket
}

// Suffix returns the key suffix, i.e. the part of the key that is not
// part of the bucket path.
func (k *Key) Suffix() []byte {
	suffixClone := make([]byte, len(k.suffix))
	copy(suffixClone, k.suffix)

	return suffixClone
}

// newKey returns a new key composed
// of the given bucket and key suffix
func newKey(bucket *Bucket, suffix []byte) *Key {
	return &Key{bucket: bucket, suffix: suffix}
}

// Bucket is a helper type meant to combine buckets
// and sub-buckets that can be used to create database
// keys and prefix-based cursors.
type Bucket struct {
	path [][]byte
}

// MakeBucket creates a new Bucket using the given path
// of buckets.
func MakeBucket(path ...[]byte) *Bucket {
	return &Bucket{path: path}
}

// Bucket returns the sub-bucket of the current bucket
// defined by bucketBytes.
func (b *Bucket) Bucket(bucketBytes []byte) *Bucket {
	newPath := make([][]byte, len(b.path)+1)
	copy(newPath, b.path)
	copy(newPath[len(b.path):], [][]byte{bucketBytes})

	return MakeBucket(newPath...)
}

// Key returns a key in the current bucket with the given suffix.
func (b *Bucket) Key(suffix []byte) *Key {
	return newKey(b, suffix)
}

// Uint64Key returns a key in the current bucket with an 8-byte big-endian
// suffix. Big-endian keeps the lexicographic order of stored keys identical
// to the numeric order of the identifiers, which makes ordered range scans
// over numeric namespaces possible.
func (b *Bucket) Uint64Key(value uint64) *Key {
	suffix := make([]byte, 8)
	binary.BigEndian.PutUint64(suffix, value)

	return newKey(b, suffix)
}

// Path returns the full path of the current bucket.
func (b *Bucket) Path() []byte {
	bucketPath := bytes.Join(b.path, separator)

	bucketPathWithFinalSeparator := make([]byte, len(bucketPath)+len(separator))
	copy(bucketPathWithFinalSeparator, bucketPath)
	copy(bucketPathWithFinalSeparator[len(bucketPath):], separator)

	return bucketPathWithFinalSeparator
}
