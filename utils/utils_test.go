package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Detail string `json:"detail"`
}

type outer struct {
	ID     string `json:"id"`
	Nested inner  `json:"nested"`
}

func TestStructToMapRoundTrip(t *testing.T) {
	src := outer{ID: "abc", Nested: inner{Detail: "info"}}

	m, err := StructToMap(src)
	require.NoError(t, err)
	assert.Equal(t, "abc", m["id"])
	// Nested objects survive as raw JSON.
	assert.IsType(t, json.RawMessage{}, m["nested"])

	back, err := MapToStruct[outer](m)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestStructToMapRejectsNonStructs(t *testing.T) {
	_, err := StructToMap(42)
	assert.Error(t, err)

	var p *outer
	_, err = StructToMap(p)
	assert.Error(t, err)
}

func TestMapToStructRejectsNilInput(t *testing.T) {
	_, err := MapToStruct[outer](nil)
	assert.Error(t, err)
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{"int", 42, 42, true},
		{"int64", int64(7), 7, true},
		{"float64", 1.5, 1.5, true},
		{"float32", float32(2), 2, true},
		{"numeric string", "3.25", 3.25, true},
		{"json number", json.Number("18"), 18, true},
		{"non-numeric string", "abc", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
