package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cinderchain/cinderd/chaincfg"
	"github.com/cinderchain/cinderd/domain/blockprocessor"
	"github.com/cinderchain/cinderd/domain/chainstate"
	"github.com/cinderchain/cinderd/infrastructure/config"
	"github.com/cinderchain/cinderd/infrastructure/db/database"
	"github.com/cinderchain/cinderd/infrastructure/db/database/ldb"
	"github.com/cinderchain/cinderd/infrastructure/db/database/memdb"
	"github.com/cinderchain/cinderd/infrastructure/logger"
	"github.com/cinderchain/cinderd/infrastructure/os/signal"
	"github.com/cinderchain/cinderd/util/panics"
	"github.com/cinderchain/cinderd/version"
)

const dbDirname = "db"

// StartApp starts cinderd and waits until it shuts down.
func StartApp() error {
	interrupt := signal.InterruptListener()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer logger.BackendLog.Close()
	defer panics.HandlePanic(log, nil)

	log.Infof("Version %s", version.Version())

	db, err := openDB(cfg)
	if err != nil {
		log.Errorf("Could not open database: %+v", err)
		return err
	}
	defer func() {
		log.Infof("Gracefully shutting down cinderd...")
		err := db.Close()
		if err != nil {
			log.Errorf("Error closing the database: %+v", err)
		}
		log.Infof("Database closed")
	}()

	store := chainstate.New()
	processor := blockprocessor.New(db, store, chainstate.NoopAdapter{})

	err = processor.Init(&chaincfg.GenesisBlock)
	if err != nil {
		log.Errorf("Could not bootstrap the chain state: %+v", err)
		return err
	}

	head, err := store.Head(db)
	if err != nil {
		log.Errorf("Could not read the chain head: %+v", err)
		return err
	}
	log.Infof("Chain state loaded, head %s at height %d", head.LastBlock, head.Height)

	// The chain state is ready to serve the syncing and validation
	// pipelines. Wait until the process is asked to shut down.
	<-interrupt
	return nil
}

func openDB(cfg *config.Config) (database.Database, error) {
	if cfg.MemoryDatabase {
		log.Infof("Keeping the chain state in memory only")
		return memdb.New(), nil
	}

	dbPath := filepath.Join(cfg.DataDir, dbDirname)
	log.Infof("Loading database from '%s'", dbPath)
	return ldb.NewLevelDB(dbPath)
}
