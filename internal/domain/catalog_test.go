package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexString_AcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"string", `{"price":"99"}`, "99"},
		{"integer", `{"price":99}`, "99"},
		{"decimal", `{"price":150.5}`, "150.5"},
		{"empty", `{"price":""}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.Price.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, p.Price)
			}
		})
	}
}

func TestFlexString_MarshalsAsString(t *testing.T) {
	data, err := json.Marshal(Product{ID: "prod_1_abcdefg", Price: "99"})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if _, isString := raw["price"].(string); !isString {
		t.Errorf("price must serialize as a string, got %T", raw["price"])
	}
}

func TestSession_States(t *testing.T) {
	if !(Session{}).IsAnonymous() {
		t.Error("zero session must be anonymous")
	}
	if !(Session{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin session must report IsAdmin")
	}
	if (Session{Role: RoleUser}).IsAdmin() {
		t.Error("user session must not report IsAdmin")
	}
}
