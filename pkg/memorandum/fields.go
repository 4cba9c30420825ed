package memorandum

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WidgetKind hints how a field should be rendered
type WidgetKind string

const (
	WidgetHidden WidgetKind = "hidden"
	WidgetText   WidgetKind = "text"
	WidgetSelect WidgetKind = "select"
)

// SelectOption is a single choice of a select widget
type SelectOption struct {
	Value int    `json:"value" yaml:"value"`
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
}

// FieldDescriptor describes one memorandum field to a user interface
type FieldDescriptor struct {
	Name        string         `json:"name" yaml:"name"`                           // Go field name
	JSONName    string         `json:"json_name" yaml:"json_name"`                 // Name of the field on the wire
	Label       string         `json:"label" yaml:"label"`                         // Display name
	Description string         `json:"description" yaml:"description"`             // Display description
	Visible     bool           `json:"visible" yaml:"visible"`                     // Whether the field is shown
	Widget      WidgetKind     `json:"widget" yaml:"widget"`                       // Widget to render the field with
	Multiple    bool           `json:"multiple,omitempty" yaml:"multiple"`         // Select widgets only
	Options     []SelectOption `json:"options,omitempty" yaml:"options,omitempty"` // Select widgets only
}

// TypeOptions returns the select options for the memorandum type field
func TypeOptions() []SelectOption {
	options := make([]SelectOption, 0, len(Types()))
	for _, t := range Types() {
		options = append(options, SelectOption{Value: int(t), Name: t.String(), Label: t.Label()})
	}
	return options
}

// Fields returns the descriptor table in field declaration order
func Fields() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "Id", JSONName: "id", Label: "Código", Description: "Código do memorando.", Visible: false, Widget: WidgetHidden},
		{Name: "Observation", JSONName: "observation", Label: "Referente", Description: "Texto \"Referente\" a.", Visible: true, Widget: WidgetText},
		{Name: "Destiny", JSONName: "destiny", Label: "Destino", Description: "Local de destino.", Visible: true, Widget: WidgetText},
		{Name: "StartDate", JSONName: "start_date", Label: "Data Ida", Description: "Data de ida.", Visible: true, Widget: WidgetText},
		{Name: "FinishDate", JSONName: "finish_date", Label: "Data Volta", Description: "Data de volta.", Visible: true, Widget: WidgetText},
		{Name: "RequesterName", JSONName: "requester_name", Label: "Solicitante", Description: "Nome do solicitante.", Visible: true, Widget: WidgetText},
		{Name: "BankAccount", JSONName: "bank_account", Label: "Conta Bancaria", Description: "Conta para deposito.", Visible: true, Widget: WidgetText},
		{Name: "CovenantNumber", JSONName: "covenant_number", Label: "Convenio", Description: "Numero do convenio.", Visible: true, Widget: WidgetText},
		{Name: "Type", JSONName: "type", Label: "Diaria solicitada", Description: "Tipo de diaria solicitada.", Visible: true, Widget: WidgetSelect, Multiple: false, Options: TypeOptions()},
	}
}

// Field looks up a descriptor by Go field name or JSON name
func Field(name string) (FieldDescriptor, bool) {
	for _, f := range Fields() {
		if strings.EqualFold(f.Name, name) || f.JSONName == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// FieldOverride replaces parts of a descriptor. Nil values are left untouched.
type FieldOverride struct {
	Label       *string `yaml:"label"`
	Description *string `yaml:"description"`
	Visible     *bool   `yaml:"visible"`
}

// ApplyOverrides returns a copy of fields with the overrides applied. Overrides
// are keyed by Go field name or JSON name.
func ApplyOverrides(fields []FieldDescriptor, overrides map[string]FieldOverride) ([]FieldDescriptor, error) {
	out := make([]FieldDescriptor, len(fields))
	copy(out, fields)

	for key, o := range overrides {
		found := false
		for i := range out {
			if !strings.EqualFold(out[i].Name, key) && out[i].JSONName != key {
				continue
			}
			found = true

			if o.Label != nil {
				out[i].Label = *o.Label
			}
			if o.Description != nil {
				out[i].Description = *o.Description
			}
			if o.Visible != nil {
				out[i].Visible = *o.Visible
			}
		}

		if !found {
			return nil, fmt.Errorf("unknown field '%s' in overrides", key)
		}
	}

	return out, nil
}

// LoadFields reads descriptor overrides from a YAML file and applies them to
// the default descriptor table. The file maps field names to overrides:
//
//	fields:
//	  observation:
//	    label: "Assunto"
func LoadFields(path string) ([]FieldDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields file: %w", err)
	}

	var config struct {
		Fields map[string]FieldOverride `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse fields file: %w", err)
	}

	return ApplyOverrides(Fields(), config.Fields)
}
