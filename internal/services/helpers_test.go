// helpers_test.go
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
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/localnerve/roulette-api/internal/models"
	"github.com/localnerve/roulette-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func ptr[T any](v T) *T {
	return &v
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := models.NewUser(models.UserParams{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed_password",
	})
	require.NoError(t, err)
	require.NoError(t, services.CreateUser(ctx, db, user))
	return user
}

func mustCreateName(t *testing.T, db *gorm.DB, label string, createdBy *uuid.UUID) *models.Name {
	t.Helper()
	name, err := models.NewName(models.NameParams{Name: label, CreatedBy: createdBy})
	require.NoError(t, err)
	require.NoError(t, services.CreateName(ctx, db, name))
	return name
}
