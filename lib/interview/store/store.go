package interviewstore

import (
	"time"

	"gorm.io/gorm"

	dbmodels "talent-screen-backend/models/db"

	"github.com/pkg/errors"
	"talent-screen-backend/models"
)

type Provider interface {
	Create(rec dbmodels.InterviewSession) (id string, err error)
	GetByID(id string) (rec *dbmodels.InterviewSession, err error)
	Save(rec *dbmodels.InterviewSession) error
	Counts() (total, completed int64, err error)
	ExpireIdle(before time.Time) (expired int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewSession) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.InterviewSession, error) {
	rec := dbmodels.InterviewSession{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Save(rec *dbmodels.InterviewSession) error {
	return i.db.
		Save(rec).
		Error
}

func (i impl) Counts() (total, completed int64, err error) {
	err = i.db.
		Model(&dbmodels.InterviewSession{}).
		Count(&total).
		Error
	if err != nil {
		return 0, 0, err
	}
	err = i.db.
		Model(&dbmodels.InterviewSession{}).
		Where("completed = ?", true).
		Count(&completed).
		Error
	if err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

// ExpireIdle closes incomplete sessions with no activity since the
// deadline. Rows are kept, only the stage changes; deletion is a separate
// retention concern.
func (i impl) ExpireIdle(before time.Time) (int64, error) {
	tx := i.db.
		Model(&dbmodels.InterviewSession{}).
		Where("completed = ?", false).
		Where("stage <> ?", models.EndedStage).
		Where("last_activity_at < ?", before).
		Update("stage", models.EndedStage)
	return tx.RowsAffected, tx.Error
}
