package memorandum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MemorandumType classifies the kind of expense a memorandum authorizes
type MemorandumType int

const (
	General   MemorandumType = iota // General travel expense
	DailyRate                       // Daily-rate allowance
)

// typeNames maps each memorandum type to its identifier
var typeNames = map[MemorandumType]string{
	General:   "General",
	DailyRate: "DailyRate",
}

// typeLabels maps each memorandum type to the label shown to users
var typeLabels = map[MemorandumType]string{
	General:   "Geral",
	DailyRate: "Diária",
}

// Types returns every memorandum type in declaration order
func Types() []MemorandumType {
	return []MemorandumType{General, DailyRate}
}

// String returns the identifier of the type
func (t MemorandumType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MemorandumType(%d)", int(t))
}

// Label returns the localized display label of the type
func (t MemorandumType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return t.String()
}

// IsValid reports whether t is a known memorandum type
func (t MemorandumType) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseMemorandumType parses a type from its identifier or its label (case insensitive)
func ParseMemorandumType(s string) (MemorandumType, error) {
	s = strings.TrimSpace(s)
	for _, t := range Types() {
		if strings.EqualFold(s, typeNames[t]) || strings.EqualFold(s, typeLabels[t]) {
			return t, nil
		}
	}
	return General, fmt.Errorf("unknown memorandum type '%s'", s)
}

// UnmarshalYAML accepts the numeric value, the identifier or the label of a type
func (t *MemorandumType) UnmarshalYAML(value *yaml.Node) error {
	if n, err := strconv.Atoi(value.Value); err == nil {
		*t = MemorandumType(n)
		return nil
	}

	parsed, err := ParseMemorandumType(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// Memorandum is a travel/expense authorization memo
type Memorandum struct {
	Id             uuid.UUID      `json:"id" yaml:"id"`
	Observation    string         `json:"observation" yaml:"observation"`         // What the memo refers to
	Destiny        string         `json:"destiny" yaml:"destiny"`                 // Travel destination
	StartDate      string         `json:"start_date" yaml:"start_date"`           // Free-form departure date
	FinishDate     string         `json:"finish_date" yaml:"finish_date"`         // Free-form return date
	RequesterName  string         `json:"requester_name" yaml:"requester_name"`   // Name of the requester
	BankAccount    string         `json:"bank_account" yaml:"bank_account"`       // Account for the deposit
	CovenantNumber string         `json:"covenant_number" yaml:"covenant_number"` // Covenant (agreement) number
	Type           MemorandumType `json:"type" yaml:"type"`
}

// DefaultMemorandum creates a memorandum with a new identifier and empty fields
func DefaultMemorandum() *Memorandum {
	return &Memorandum{
		Id:             uuid.New(),
		Observation:    "",
		Destiny:        "",
		StartDate:      "",
		FinishDate:     "",
		RequesterName:  "",
		BankAccount:    "",
		CovenantNumber: "",
		Type:           General,
	}
}

// Clone returns a copy of the memorandum
func (m *Memorandum) Clone() *Memorandum {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
