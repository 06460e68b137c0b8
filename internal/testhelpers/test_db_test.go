package testhelpers

import (
	"testing"

	"interviewmate/internal/models"
)

func TestSetupTestDBCreatesSchema(t *testing.T) {
	db := SetupTestDB(t)
	if !db.Migrator().HasTable(&models.KVEntry{}) {
		t.Fatalf("expected kv_entries table to exist")
	}
}

func TestDropKVTableRemovesTable(t *testing.T) {
	db := SetupTestDB(t)
	DropKVTable(t, db)
	if db.Migrator().HasTable(&models.KVEntry{}) {
		t.Fatalf("expected kv_entries table to be dropped")
	}
}
