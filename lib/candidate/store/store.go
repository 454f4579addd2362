package candidatestore

import (
	"gorm.io/gorm"

	dbmodels "talent-screen-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateResult) (id string, err error)
	List() ([]dbmodels.CandidateResult, error)
	GetBySessionID(sessionID string) (rec *dbmodels.CandidateResult, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateResult) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.CandidateResult, error) {
	var list []dbmodels.CandidateResult
	err := i.db.
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetBySessionID(sessionID string) (*dbmodels.CandidateResult, error) {
	rec := dbmodels.CandidateResult{}
	err := i.db.
		Where("session_id = ?", sessionID).
		First(&rec).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
