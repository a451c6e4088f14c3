package models

import (
	"database/sql/driver"
	"reflect"
	"testing"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       StringSlice
		wantVal driver.Value
	}{
		{name: "nil slice", s: nil, wantVal: "[]"},
		{name: "empty slice", s: StringSlice{}, wantVal: "[]"},
		{name: "options", s: StringSlice{"London", "Paris"}, wantVal: `["London","Paris"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotVal, err := tt.s.Value()
			if err != nil {
				t.Fatalf("StringSlice.Value() error = %v", err)
			}
			if !reflect.DeepEqual(gotVal, tt.wantVal) {
				t.Errorf("StringSlice.Value() gotVal = %v, want %v", gotVal, tt.wantVal)
			}
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantS   StringSlice
		wantErr bool
	}{
		{name: "nil value", value: nil, wantS: StringSlice{}},
		{name: "empty string", value: "", wantS: StringSlice{}},
		{name: "null literal", value: []byte("null"), wantS: StringSlice{}},
		{name: "json array", value: `["a) London", "b) Paris"]`, wantS: StringSlice{"a) London", "b) Paris"}},
		{name: "label map", value: []byte(`{"b": "Paris", "a": "London", "c": "Berlin"}`), wantS: StringSlice{"London", "Paris", "Berlin"}},
		{name: "invalid json", value: "London|Paris", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StringSlice.Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(s, tt.wantS) {
				t.Errorf("StringSlice.Scan() got = %v, want %v", s, tt.wantS)
			}
		})
	}
}
