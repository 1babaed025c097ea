package engine

import (
	"testing"
	"time"
)

func TestRowInt(t *testing.T) {
	row := Row{"id": int64(42), "height": 1.0, "name": "x"}

	if got, err := row.Int("id"); err != nil || got != 42 {
		t.Errorf("Int(id) = %d, %v", got, err)
	}
	if got, err := row.Int("height"); err != nil || got != 1 {
		t.Errorf("Int(height) = %d, %v", got, err)
	}
	if _, err := row.Int("name"); err == nil {
		t.Error("Expected error for string column")
	}
	if _, err := row.Int("missing"); err == nil {
		t.Error("Expected error for missing column")
	}
	if _, err := (Row{"id": nil}).Int("id"); err == nil {
		t.Error("Expected error for NULL column")
	}
}

func TestRowText(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	row := Row{"name": "Jane", "blob": []byte("raw"), "created_at": ts}

	if got, err := row.Text("name"); err != nil || got != "Jane" {
		t.Errorf("Text(name) = %q, %v", got, err)
	}
	if got, err := row.Text("blob"); err != nil || got != "raw" {
		t.Errorf("Text(blob) = %q, %v", got, err)
	}
	if got, err := row.Text("created_at"); err != nil || got != "2024-05-01 09:30:00" {
		t.Errorf("Text(created_at) = %q, %v", got, err)
	}
	if _, err := row.Text("missing"); err == nil {
		t.Error("Expected error for missing column")
	}
}

func TestRowOptional(t *testing.T) {
	row := Row{"address": "Main St", "height": 180.5, "weight": int64(72), "email": nil}

	if got := row.OptionalText("address"); got == nil || *got != "Main St" {
		t.Errorf("OptionalText(address) = %v", got)
	}
	if got := row.OptionalText("email"); got != nil {
		t.Errorf("OptionalText(email) = %v, want nil", got)
	}
	if got := row.OptionalText("missing"); got != nil {
		t.Errorf("OptionalText(missing) = %v, want nil", got)
	}
	if got := row.OptionalReal("height"); got == nil || *got != 180.5 {
		t.Errorf("OptionalReal(height) = %v", got)
	}
	if got := row.OptionalReal("weight"); got == nil || *got != 72 {
		t.Errorf("OptionalReal(weight) = %v", got)
	}
	if got := row.OptionalReal("missing"); got != nil {
		t.Errorf("OptionalReal(missing) = %v, want nil", got)
	}
}
