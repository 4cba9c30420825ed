package memorandum

import (
	"time"

	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemorandumModel represents the database model for memoranda
type MemorandumModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey;unique;not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"column:deleted_at;index"`

	Observation    string `json:"observation" gorm:"column:observation;type:text"`
	Destiny        string `json:"destiny" gorm:"column:destiny;type:text"`
	StartDate      string `json:"start_date" gorm:"column:start_date;type:text"`
	FinishDate     string `json:"finish_date" gorm:"column:finish_date;type:text"`
	RequesterName  string `json:"requester_name" gorm:"column:requester_name;size:50;index"`
	BankAccount    string `json:"bank_account" gorm:"column:bank_account;type:text"`
	CovenantNumber string `json:"covenant_number" gorm:"column:covenant_number;type:text"`
	Type           int    `json:"type" gorm:"column:type;not null;default:0;index"`
}

// TableName sets the table name for GORM
func (MemorandumModel) TableName() string {
	return "memorandums"
}

// toModel converts a memorandum into its database model
func toModel(m *memorandum.Memorandum) *MemorandumModel {
	return &MemorandumModel{
		ID:             m.Id,
		Observation:    m.Observation,
		Destiny:        m.Destiny,
		StartDate:      m.StartDate,
		FinishDate:     m.FinishDate,
		RequesterName:  m.RequesterName,
		BankAccount:    m.BankAccount,
		CovenantNumber: m.CovenantNumber,
		Type:           int(m.Type),
	}
}

// toMemorandum converts a database model back into a memorandum
func (model *MemorandumModel) toMemorandum() *memorandum.Memorandum {
	return &memorandum.Memorandum{
		Id:             model.ID,
		Observation:    model.Observation,
		Destiny:        model.Destiny,
		StartDate:      model.StartDate,
		FinishDate:     model.FinishDate,
		RequesterName:  model.RequesterName,
		BankAccount:    model.BankAccount,
		CovenantNumber: model.CovenantNumber,
		Type:           memorandum.MemorandumType(model.Type),
	}
}
