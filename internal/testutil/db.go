// db.go
//
// Backend data service for the roulette name picker
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of roulette-api.
// roulette-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roulette-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roulette-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SQLiteConfig returns a config for a private in-memory SQLite database.
// The single connection keeps every query on the same database.
func SQLiteConfig() *config.Config {
	return &config.Config{
		Port:              "8000",
		CORSOrigin:        "http://localhost:3000",
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		LogLevel:          "error",
		LogFormat:         "text",
	}
}

// NewTestDB opens and migrates an in-memory SQLite database with foreign
// keys enforced. It is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	return OpenTestDB(t, SQLiteConfig())
}

// OpenTestDB connects with cfg and migrates the schema.
func OpenTestDB(t testing.TB, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Connect(cfg)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	require.NoError(t, database.AutoMigrate(db), "Failed to migrate test database")
	return db
}
