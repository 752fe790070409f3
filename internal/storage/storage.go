package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Storage struct {
	DB           *sql.DB
	Transactions transaction.ITransactionTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		Transactions: transaction.NewTable(bob.NewDB(db)),
	}
}
