package database_test

import (
	"bytes"
	"testing"

	"github.com/cinderchain/cinderd/infrastructure/db/database"
)

var testBucket = database.MakeBucket([]byte{'t'})

func TestPut(t *testing.T) {
	testForAllDatabaseTypes(t, "TestPut", testPut)
}

func testPut(t *testing.T, db database.Database, testName string) {
	// Put value1 into the database
	key := testBucket.Key([]byte("key"))
	value1 := []byte("value1")
	err := db.Put(key, value1)
	if err != nil {
		t.Fatalf("%s: Put "+
			"unexpectedly failed: %s", testName, err)
	}

	// Make sure that the returned value is value1
	returnedValue, found, err := db.Get(key)
	if err != nil {
		t.Fatalf("%s: Get "+
			"unexpectedly failed: %s", testName, err)
	}
	if !found {
		t.Fatalf("%s: Get "+
			"unexpectedly not found", testName)
	}
	if !bytes.Equal(returnedValue, value1) {
		t.Fatalf("%s: Get "+
			"returned wrong value. Want: %s, got: %s",
			testName, string(value1), string(returnedValue))
	}

	// Put value2 into the database with the same key
	value2 := []byte("value2")
	err = db.Put(key, value2)
	if err != nil {
		t.Fatalf("%s: Put "+
			"unexpectedly failed: %s", testName, err)
	}

	// Make sure that the returned value is value2
	returnedValue, _, err = db.Get(key)
	if err != nil {
		t.Fatalf("%s: Get "+
			"unexpectedly failed: %s", testName, err)
	}
	if !bytes.Equal(returnedValue, value2) {
		t.Fatalf("%s: Get "+
			"returned wrong value. Want: %s, got: %s",
			testName, string(value2), string(returnedValue))
	}
}

// TestGetVerbatim makes sure that stored values and identifiers are kept
// verbatim: empty values survive, and identifiers containing the reserved
// separator byte are not re-parsed on the way in or out.
func TestGetVerbatim(t *testing.T) {
	testForAllDatabaseTypes(t, "TestGetVerbatim", testGetVerbatim)
}

func testGetVerbatim(t *testing.T, db database.Database, testName string) {
	tests := []struct {
		name  string
		key   *database.Key
		value []byte
	}{
		{"simple", testBucket.Key([]byte("a")), []byte("some value")},
		{"empty value", testBucket.Key([]byte("empty")), []byte{}},
		{"separator inside identifier", testBucket.Key([]byte("with/separator/bytes")), []byte("separated")},
		{"binary identifier", testBucket.Key([]byte{0x00, '/', 0xff, '/'}), []byte{0x00, 0x01, 0x02}},
	}

	for _, test := range tests {
		err := db.Put(test.key, test.value)
		if err != nil {
			t.Fatalf("%s: %s: Put unexpectedly failed: %s",
				testName, test.name, err)
		}

		returnedValue, found, err := db.Get(test.key)
		if err != nil {
			t.Fatalf("%s: %s: Get unexpectedly failed: %s",
				testName, test.name, err)
		}
		if !found {
			t.Fatalf("%s: %s: Get unexpectedly not found",
				testName, test.name)
		}
		if !bytes.Equal(returnedValue, test.value) {
			t.Fatalf("%s: %s: Get returned wrong value. Want: %v, got: %v",
				testName, test.name, test.value, returnedValue)
		}
	}
}

// TestGetMissing makes sure that getting a never-written key reports a
// normal not-found outcome rather than an error.
func TestGetMissing(t *testing.T) {
	testForAllDatabaseTypes(t, "TestGetMissing", testGetMissing)
}

func testGetMissing(t *testing.T, db database.Database, testName string) {
	key := testBucket.Key([]byte("doesn't exist"))

	_, found, err := db.Get(key)
	if err != nil {
		t.Fatalf("%s: Get "+
			"unexpectedly failed: %s", testName, err)
	}
	if found {
		t.Fatalf("%s: Get "+
			"unexpectedly found a never-written key", testName)
	}

	has, err := db.Has(key)
	if err != nil {
		t.Fatalf("%s: Has "+
			"unexpectedly failed: %s", testName, err)
	}
	if has {
		t.Fatalf("%s: Has "+
			"unexpectedly returned true for a never-written key", testName)
	}
}

func TestDelete(t *testing.T) {
	testForAllDatabaseTypes(t, "TestDelete", testDelete)
}

func testDelete(t *testing.T, db database.Database, testName string) {
	// Put a value into the database
	key := testBucket.Key([]byte("key"))
	value := []byte("value")
	err := db.Put(key, value)
	if err != nil {
		t.Fatalf("%s: Put "+
			"unexpectedly failed: %s", testName, err)
	}

	// Delete the value
	err = db.Delete(key)
	if err != nil {
		t.Fatalf("%s: Delete "+
			"unexpectedly failed: %s", testName, err)
	}

	// Make sure that the key is no longer found
	_, found, err := db.Get(key)
	if err != nil {
		t.Fatalf("%s: Get "+
			"unexpectedly failed: %s", testName, err)
	}
	if found {
		t.Fatalf("%s: Get "+
			"unexpectedly found a deleted key", testName)
	}

	// Deleting a key that doesn't exist is not an error
	err = db.Delete(testBucket.Key([]byte("doesn't exist")))
	if err != nil {
		t.Fatalf("%s: Delete of an absent key "+
			"unexpectedly failed: %s", testName, err)
	}
}

func TestRequire(t *testing.T) {
	testForAllDatabaseTypes(t, "TestRequire", testRequire)
}

func testRequire(t *testing.T, db database.Database, testName string) {
	// Require of an absent key converts absence into an explicit
	// not-found error
	key := testBucket.Key([]byte("doesn't exist"))
	_, err := database.Require(db, key)
	if err == nil {
		t.Fatalf("%s: Require "+
			"unexpectedly succeeded for an absent key", testName)
	}
	if !database.IsNotFoundError(err) {
		t.Fatalf("%s: Require "+
			"returned wrong error: %s", testName, err)
	}

	// Require of a present key returns its value
	value := []byte("value")
	err = db.Put(key, value)
	if err != nil {
		t.Fatalf("%s: Put "+
			"unexpectedly failed: %s", testName, err)
	}
	returnedValue, err := database.Require(db, key)
	if err != nil {
		t.Fatalf("%s: Require "+
			"unexpectedly failed: %s", testName, err)
	}
	if !bytes.Equal(returnedValue, value) {
		t.Fatalf("%s: Require "+
			"returned wrong value. Want: %s, got: %s",
			testName, string(value), string(returnedValue))
	}
}
