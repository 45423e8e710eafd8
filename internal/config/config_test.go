package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATASTORE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DataStore != DataStoreMemory {
		t.Fatalf("expected memory datastore by default, got %s", cfg.DataStore)
	}
}

func TestLoadRejectsUnknownDataStore(t *testing.T) {
	t.Setenv("DATASTORE", "cassandra")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported datastore")
	}
}

func TestLoadFirestoreRequiresProject(t *testing.T) {
	t.Setenv("DATASTORE", "firestore")
	t.Setenv("GCP_PROJECT_ID", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when project id missing")
	}

	t.Setenv("GCP_PROJECT_ID", "studyflow-dev")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataStore != DataStoreFirestore {
		t.Fatalf("expected firestore datastore, got %s", cfg.DataStore)
	}
}

func TestLoadRejectsSeedingAgainstFirestore(t *testing.T) {
	t.Setenv("DATASTORE", "firestore")
	t.Setenv("GCP_PROJECT_ID", "studyflow-dev")
	t.Setenv("SEED_DEMO_DATA", "true")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for seeding with firestore")
	}
}
