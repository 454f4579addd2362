package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "talent-screen-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.InterviewSession{}); err != nil {
		return errors.Wrap(err, "failed to migrate InterviewSession")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateResult{}); err != nil {
		return errors.Wrap(err, "failed to migrate CandidateResult")
	}
	log.Info("migrations finished")
	return nil
}
