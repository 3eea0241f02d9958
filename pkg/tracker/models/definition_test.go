package models

import "testing"

func TestDefinitionValidate(t *testing.T) {
	def := Definition{
		Name:    "Test",
		Headers: []string{"A", "B", "C"},
		Rows: [][]interface{}{
			{"one", 2, "three"},
			{"", "", ""},
		},
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate failed on well-formed definition: %v", err)
	}

	short := def
	short.Rows = [][]interface{}{{"only", "two"}}
	if err := short.Validate(); err == nil {
		t.Error("Validate accepted a row with wrong arity")
	}

	unnamed := def
	unnamed.Name = ""
	if err := unnamed.Validate(); err == nil {
		t.Error("Validate accepted an unnamed definition")
	}

	headerless := def
	headerless.Headers = nil
	headerless.Rows = nil
	if err := headerless.Validate(); err == nil {
		t.Error("Validate accepted a definition without headers")
	}
}

func TestDefinitionTotalRows(t *testing.T) {
	def := Definition{
		Name:      "Test",
		Headers:   []string{"A"},
		Rows:      [][]interface{}{{"x"}, {"y"}},
		BlankRows: 10,
	}
	if got := def.TotalRows(); got != 13 {
		t.Errorf("TotalRows = %d, expected 13", got)
	}
}
