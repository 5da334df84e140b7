package database_test

import (
	"encoding/binary"
	"io"
	"io/ioutil"
	"testing"

	"github.com/cinderchain/cinderd/infrastructure/db/database"
	"github.com/pkg/errors"
)

// testRecord is a small record with an 8-byte fixed leading region followed
// by a variable-length payload, so it can exercise both whole-value and
// prefix decoding.
type testRecord struct {
	counter uint64
	payload []byte
}

func (r *testRecord) Serialize(w io.Writer) error {
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], r.counter)
	_, err := w.Write(counterBytes[:])
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = w.Write(r.payload)
	return errors.WithStack(err)
}

func (r *testRecord) Deserialize(reader io.Reader) error {
	var counterBytes [8]byte
	_, err := io.ReadFull(reader, counterBytes[:])
	if err != nil {
		return errors.WithStack(err)
	}
	r.counter = binary.BigEndian.Uint64(counterBytes[:])
	r.payload, err = ioutil.ReadAll(reader)
	return errors.WithStack(err)
}

// testRecordHeader decodes only the fixed leading region of a testRecord.
type testRecordHeader struct {
	counter uint64
}

func (r *testRecordHeader) Deserialize(reader io.Reader) error {
	var counterBytes [8]byte
	_, err := io.ReadFull(reader, counterBytes[:])
	if err != nil {
		return errors.WithStack(err)
	}
	r.counter = binary.BigEndian.Uint64(counterBytes[:])
	return nil
}

func TestPutEncodedGetDecoded(t *testing.T) {
	testForAllDatabaseTypes(t, "TestPutEncodedGetDecoded", func(t *testing.T, db database.Database, testName string) {
		key := testBucket.Key([]byte("record"))
		record := &testRecord{counter: 1986, payload: []byte("arbitrary payload")}

		err := database.PutEncoded(db, key, record)
		if err != nil {
			t.Fatalf("%s: PutEncoded unexpectedly failed: %s", testName, err)
		}

		decoded := &testRecord{}
		found, err := database.GetDecoded(db, key, decoded)
		if err != nil {
			t.Fatalf("%s: GetDecoded unexpectedly failed: %s", testName, err)
		}
		if !found {
			t.Fatalf("%s: GetDecoded unexpectedly could not find the record", testName)
		}
		if decoded.counter != record.counter || string(decoded.payload) != string(record.payload) {
			t.Fatalf("%s: GetDecoded returned a record other than the one put. "+
				"Want: %+v, got: %+v", testName, record, decoded)
		}
	})
}

func TestGetDecodedMissing(t *testing.T) {
	testForAllDatabaseTypes(t, "TestGetDecodedMissing", func(t *testing.T, db database.Database, testName string) {
		decoded := &testRecord{}
		found, err := database.GetDecoded(db, testBucket.Key([]byte("no such record")), decoded)
		if err != nil {
			t.Fatalf("%s: GetDecoded unexpectedly failed on a missing key: %s", testName, err)
		}
		if found {
			t.Fatalf("%s: GetDecoded unexpectedly found a record that was never put", testName)
		}
	})
}

func TestGetDecodedPrefix(t *testing.T) {
	testForAllDatabaseTypes(t, "TestGetDecodedPrefix", func(t *testing.T, db database.Database, testName string) {
		key := testBucket.Key([]byte("record"))
		record := &testRecord{counter: 55, payload: []byte("payload the prefix decode must skip")}

		err := database.PutEncoded(db, key, record)
		if err != nil {
			t.Fatalf("%s: PutEncoded unexpectedly failed: %s", testName, err)
		}

		header := &testRecordHeader{}
		found, err := database.GetDecodedPrefix(db, key, header, 8)
		if err != nil {
			t.Fatalf("%s: GetDecodedPrefix unexpectedly failed: %s", testName, err)
		}
		if !found {
			t.Fatalf("%s: GetDecodedPrefix unexpectedly could not find the record", testName)
		}
		if header.counter != record.counter {
			t.Fatalf("%s: GetDecodedPrefix returned an unexpected counter. "+
				"Want: %d, got: %d", testName, record.counter, header.counter)
		}

		// A prefix longer than the stored value is a malformed-data error,
		// not a missing key
		_, err = database.GetDecodedPrefix(db, key, header, 1000)
		if !database.IsMalformedDataError(err) {
			t.Fatalf("%s: GetDecodedPrefix on a too-short value returned %s "+
				"instead of a malformed-data error", testName, err)
		}
	})
}

func TestGetDecodedMalformed(t *testing.T) {
	testForAllDatabaseTypes(t, "TestGetDecodedMalformed", func(t *testing.T, db database.Database, testName string) {
		key := testBucket.Key([]byte("truncated"))
		err := db.Put(key, []byte{1, 2, 3}) // shorter than the fixed region
		if err != nil {
			t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
		}

		decoded := &testRecord{}
		_, err = database.GetDecoded(db, key, decoded)
		if !database.IsMalformedDataError(err) {
			t.Fatalf("%s: GetDecoded on a truncated value returned %s "+
				"instead of a malformed-data error", testName, err)
		}
		if database.IsNotFoundError(err) {
			t.Fatalf("%s: a decode failure was misreported as a missing key", testName)
		}
	})
}

func TestRequireDecoded(t *testing.T) {
	testForAllDatabaseTypes(t, "TestRequireDecoded", func(t *testing.T, db database.Database, testName string) {
		decoded := &testRecord{}
		err := database.RequireDecoded(db, testBucket.Key([]byte("no such record")), decoded)
		if !database.IsNotFoundError(err) {
			t.Fatalf("%s: RequireDecoded on a missing key returned %s "+
				"instead of a not-found error", testName, err)
		}
	})
}
