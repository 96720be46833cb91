// errors_test.go
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

package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/localnerve/roulette-api/internal/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		unique bool
		fk     bool
	}{
		{"nil", nil, false, false},
		{"translated duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true, false},
		{"translated foreign key", gorm.ErrForeignKeyViolated, false, true},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.username"), true, false},
		{"postgres unique", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), true, false},
		{"mysql unique", errors.New("Error 1062: Duplicate entry 'a' for key 'idx_users_username'"), true, false},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), false, true},
		{"postgres foreign key", errors.New(`insert or update on table "names" violates foreign key constraint "fk_names_creator"`), false, true},
		{"mysql foreign key", errors.New("Cannot add or update a child row: a foreign key constraint fails"), false, true},
		{"other", errors.New("connection refused"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, services.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.fk, services.IsForeignKeyViolation(tt.err))
		})
	}

	assert.True(t, services.IsNotFound(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))
	assert.False(t, services.IsNotFound(nil))
}

func TestHashPassword(t *testing.T) {
	hash, err := services.HashPassword("spin-to-win")
	assert.NoError(t, err)
	assert.NotEqual(t, "spin-to-win", hash)
	assert.True(t, services.CheckPassword(hash, "spin-to-win"))
	assert.False(t, services.CheckPassword(hash, "spin-to-lose"))
}
