package config

import (
	"fmt"
	"strings"

	"github.com/badbingo/studyflow/internal/envconfig"
)

// Config encapsulates the runtime configuration for the admin insights service.
type Config struct {
	Port         string    `validate:"required"`
	GCPProjectID string
	DataStore    DataStore `validate:"oneof=memory firestore"`
	SeedDemoData bool
	Firestore    FirestoreConfig
}

// DataStore enumerates supported persistence backends.
type DataStore string

const (
	// DataStoreMemory serves the dashboard from in-memory records (useful for local development/testing).
	DataStoreMemory DataStore = "memory"
	// DataStoreFirestore reads records from Google Cloud Firestore.
	DataStoreFirestore DataStore = "firestore"
)

// FirestoreConfig tailors Firestore client behavior.
type FirestoreConfig struct {
	EmulatorHost string
}

// Load reads environment variables into Config with validation.
func Load() (Config, error) {
	cfg := Config{
		Port:         envconfig.Get("PORT", "8080"),
		GCPProjectID: envconfig.Get("GCP_PROJECT_ID", ""),
		DataStore:    DataStore(strings.ToLower(envconfig.Get("DATASTORE", string(DataStoreMemory)))),
		SeedDemoData: envconfig.GetBool("SEED_DEMO_DATA", false),
		Firestore: FirestoreConfig{
			EmulatorHost: envconfig.Get("FIRESTORE_EMULATOR_HOST", ""),
		},
	}

	if err := envconfig.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.DataStore == DataStoreFirestore && cfg.GCPProjectID == "" {
		return Config{}, fmt.Errorf("gcp project id required when datastore=firestore")
	}
	if cfg.DataStore == DataStoreFirestore && cfg.SeedDemoData {
		return Config{}, fmt.Errorf("demo seeding is only supported with datastore=memory")
	}

	return cfg, nil
}
