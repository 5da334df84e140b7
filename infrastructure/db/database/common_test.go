package database_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/cinderchain/cinderd/infrastructure/db/database"
	"github.com/cinderchain/cinderd/infrastructure/db/database/ldb"
	"github.com/cinderchain/cinderd/infrastructure/db/database/memdb"
)

var databasePrepareFuncs = []func(t *testing.T, testName string) (db database.Database, name string, teardownFunc func()){
	prepareLDBForTest,
	prepareMemDBForTest,
}

func prepareLDBForTest(t *testing.T, testName string) (db database.Database, name string, teardownFunc func()) {
	// Create a temp db to run tests against
	path, err := ioutil.TempDir("", testName)
	if err != nil {
		t.Fatalf("%s: TempDir unexpectedly "+
			"failed: %s", testName, err)
	}
	db, err = ldb.NewLevelDB(path)
	if err != nil {
		t.Fatalf("%s: NewLevelDB unexpectedly "+
			"failed: %s", testName, err)
	}
	teardownFunc = func() {
		err = db.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly "+
				"failed: %s", testName, err)
		}
		err = os.RemoveAll(path)
		if err != nil {
			t.Fatalf("%s: RemoveAll unexpectedly "+
				"failed: %s", testName, err)
		}
	}
	return db, "ldb", teardownFunc
}

func prepareMemDBForTest(t *testing.T, testName string) (db database.Database, name string, teardownFunc func()) {
	memDB := memdb.New()
	teardownFunc = func() {
		err := memDB.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly "+
				"failed: %s", testName, err)
		}
	}
	return memDB, "memdb", teardownFunc
}

func testForAllDatabaseTypes(t *testing.T, testName string,
	function func(t *testing.T, db database.Database, testName string)) {

	for _, prepareDatabase := range databasePrepareFuncs {
		func() {
			db, dbType, teardownFunc := prepareDatabase(t, testName)
			defer teardownFunc()

			testName := fmt.Sprintf("%s: %s", dbType, testName)
			function(t, db, testName)
		}()
	}
}
