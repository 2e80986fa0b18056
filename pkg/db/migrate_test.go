package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const migrationsDir = "../../migrations"

// TestMigrationFilesExist verifies that migration files are present
func TestMigrationFilesExist(t *testing.T) {
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatalf("migrations directory does not exist: %s", migrationsDir)
	}

	expectedFiles := []string{
		"000001_init.up.sql",
		"000001_init.down.sql",
	}

	for _, filename := range expectedFiles {
		filePath := filepath.Join(migrationsDir, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("migration file does not exist: %s", filePath)
		}
	}
}

// TestMigrationFilesParseable verifies that migration files contain valid SQL
func TestMigrationFilesParseable(t *testing.T) {
	for _, filename := range []string{"000001_init.up.sql", "000001_init.down.sql"} {
		filePath := filepath.Join(migrationsDir, filename)
		content, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatalf("failed to read migration file %s: %v", filename, err)
		}

		if len(content) == 0 {
			t.Errorf("migration file %s is empty", filename)
		}

		contentStr := string(content)
		if strings.HasSuffix(filename, ".up.sql") {
			if !strings.Contains(contentStr, "CREATE TABLE") {
				t.Errorf("up migration %s does not contain expected CREATE statements", filename)
			}
			for _, table := range []string{"mentees", "mentors", "mentorship_requests", "testimonials"} {
				if !strings.Contains(contentStr, table) {
					t.Errorf("up migration %s does not create table %s", filename, table)
				}
			}
		} else {
			if !strings.Contains(contentStr, "DROP TABLE") {
				t.Errorf("down migration %s does not contain expected DROP statements", filename)
			}
		}
	}
}
