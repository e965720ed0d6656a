package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/members-ledger/internal/config"
	"github.com/carson-networks/members-ledger/internal/kvstore"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	status, err := kvstore.MigratePostgres(db)
	if err != nil {
		logrus.WithError(err).Fatal("kvstore.MigratePostgres")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
