package database

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	var up, down int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			up++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			down++
		}
	}
	if up == 0 || up != down {
		t.Fatalf("migrations up=%d down=%d, want matching non-zero counts", up, down)
	}

	raw, err := fs.ReadFile(migrationsFS, "migrations/000001_create_workouts.up.sql")
	if err != nil {
		t.Fatalf("read create migration: %v", err)
	}
	for _, column := range []string{"name", "description", "category", "start_date"} {
		if !strings.Contains(string(raw), column) {
			t.Fatalf("create migration missing column %s", column)
		}
	}
}
