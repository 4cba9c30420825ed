package memorandum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validMemorandum returns a memorandum that passes every rule
func validMemorandum() *Memorandum {
	m := DefaultMemorandum()
	m.RequesterName = "john.doe123"
	m.Observation = "trip"
	m.Destiny = "city"
	return m
}

func TestValidate_ValidMemorandum(t *testing.T) {
	for _, set := range RuleSets() {
		t.Run(string(set), func(t *testing.T) {
			failures := Validate(validMemorandum(), set)
			assert.Empty(t, failures)
		})
	}
}

func TestValidate_RequesterName(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{"empty", "", []string{MessageRequesterRequired, MessageRequesterLength, MessageRequesterPattern}},
		{"whitespace only", "     ", []string{MessageRequesterRequired, MessageRequesterPattern}},
		{"too short", "ab", []string{MessageRequesterLength}},
		{"starts with digit", "5abc", []string{MessageRequesterLength, MessageRequesterPattern}},
		{"starts with digit long enough", "5abcdef", []string{MessageRequesterPattern}},
		{"minimum length", "abcde", nil},
		{"maximum length", "a" + strings.Repeat("b", 49), nil},
		{"too long", "a" + strings.Repeat("b", 50), []string{MessageRequesterLength}},
		{"with one dot", "john.doe", nil},
		{"with underscore", "john_doe", nil},
		{"trailing dot", "johndoe.", nil},
		{"two dots", "john.doe.x", []string{MessageRequesterPattern}},
		{"with space", "john doe", []string{MessageRequesterPattern}},
		{"accented letters", "joãozinho", []string{MessageRequesterPattern}},
		{"trailing newline", "abcde\n", nil},
		{"two trailing newlines", "abcde\n\n", []string{MessageRequesterPattern}},
		{"inner newline", "abc\nde", []string{MessageRequesterPattern}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := validMemorandum()
			m.RequesterName = test.value

			failures := Validate(m, RuleSetDefault)

			var messages []string
			for _, f := range failures {
				assert.Equal(t, "RequesterName", f.Field)
				messages = append(messages, f.Message)
			}
			assert.Equal(t, test.expected, messages)
		})
	}
}

func TestValidate_LengthCountsCharacters(t *testing.T) {
	m := validMemorandum()

	// 50 characters but more than 50 bytes
	m.RequesterName = strings.Repeat("é", 50)
	failures := Validate(m, RuleSetDefault)
	assert.NotContains(t, failures, ValidationFailure{Field: "RequesterName", Message: MessageRequesterLength})
}

func TestValidate_SingleFailure(t *testing.T) {
	m := DefaultMemorandum()
	m.Observation = ""
	m.Destiny = "valid text"
	m.RequesterName = "validname"

	failures := Validate(m, RuleSetDefault)
	require.Len(t, failures, 1)
	assert.Equal(t, ValidationFailure{Field: "Observation", Message: "A observaçao é obrigatório."}, failures[0])
}

func TestValidate_DefaultMemorandumOrder(t *testing.T) {
	failures := Validate(DefaultMemorandum(), RuleSetUpdate)

	expected := ValidationErrors{
		{Field: "RequesterName", Message: "O nome do requerente é obrigatório."},
		{Field: "RequesterName", Message: "O nome do requerente deve conter entre 5 e 50 caracteres."},
		{Field: "RequesterName", Message: "Insira somente letras."},
		{Field: "Observation", Message: "A observaçao é obrigatório."},
		{Field: "Destiny", Message: "O destino é obrigatório."},
	}
	assert.Equal(t, expected, failures)
	assert.Equal(t, []string{"RequesterName", "Observation", "Destiny"}, failures.Fields())
	assert.Len(t, failures.ByField()["RequesterName"], 3)
}

func TestValidate_RuleSetsMatch(t *testing.T) {
	inputs := []*Memorandum{
		DefaultMemorandum(),
		validMemorandum(),
		{RequesterName: "ab", Observation: "x"},
		{RequesterName: "5abc", Destiny: "y"},
	}

	for _, m := range inputs {
		assert.Equal(t, Validate(m, RuleSetDefault), Validate(m, RuleSetUpdate))
	}
}

func TestValidate_UnvalidatedFields(t *testing.T) {
	m := validMemorandum()
	m.StartDate = "not a date"
	m.FinishDate = "???"
	m.BankAccount = ""
	m.CovenantNumber = ""
	m.Type = MemorandumType(42)

	assert.Empty(t, Validate(m, RuleSetDefault))
}

func TestValidate_UnknownRuleSet(t *testing.T) {
	assert.Empty(t, Validate(DefaultMemorandum(), RuleSet("archive")))
	assert.Empty(t, Validate(nil, RuleSet("archive")))
}

func TestValidate_NilIsEmpty(t *testing.T) {
	for _, set := range RuleSets() {
		t.Run(string(set), func(t *testing.T) {
			assert.Equal(t, Validate(&Memorandum{}, set), Validate(nil, set))
			assert.Len(t, Validate(nil, set), 5)
		})
	}
}

func TestParseRuleSet(t *testing.T) {
	set, err := ParseRuleSet("")
	require.NoError(t, err)
	assert.Equal(t, RuleSetDefault, set)

	set, err = ParseRuleSet(" Update ")
	require.NoError(t, err)
	assert.Equal(t, RuleSetUpdate, set)

	_, err = ParseRuleSet("delete")
	assert.Error(t, err)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: "Destiny", Message: MessageDestinyEmpty}}

	var err error = errs
	assert.Equal(t, "validation failed: Destiny: O destino é obrigatório.", err.Error())
}
