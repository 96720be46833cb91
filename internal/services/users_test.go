// users_test.go
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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/roulette-api/internal/models"
	"github.com/localnerve/roulette-api/internal/services"
	"github.com/localnerve/roulette-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateAndGetUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := mustCreateUser(t, db, "spinner")

	got, err := services.GetUser(ctx, db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "spinner", got.Username)
	assert.Equal(t, "spinner@example.com", got.Email)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.True(t, got.IsActive)
	assert.WithinDuration(t, user.CreatedAt, got.CreatedAt, time.Millisecond)

	got, err = services.GetUserByUsername(ctx, db, "spinner")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestGetUserNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := services.GetUser(ctx, db, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.True(t, services.IsNotFound(err))

	_, err = services.GetUserByUsername(ctx, db, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	mustCreateUser(t, db, "spinner")

	dupUsername, err := models.NewUser(models.UserParams{Username: "spinner", Email: "other@example.com", PasswordHash: "x"})
	require.NoError(t, err)
	err = services.CreateUser(ctx, db, dupUsername)
	require.Error(t, err)
	assert.True(t, services.IsUniqueViolation(err), "got %v", err)

	dupEmail, err := models.NewUser(models.UserParams{Username: "other", Email: "SPINNER@example.com", PasswordHash: "x"})
	require.NoError(t, err)
	err = services.CreateUser(ctx, db, dupEmail)
	require.Error(t, err)
	assert.True(t, services.IsUniqueViolation(err), "got %v", err)
}

func TestUpdateUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := mustCreateUser(t, db, "spinner")
	created := user.UpdatedAt

	require.NoError(t, user.SetRole(models.RoleAnalyst))
	require.NoError(t, user.SetEmail("New@Example.com"))
	user.SetActive(false)
	require.NoError(t, services.UpdateUser(ctx, db, user))

	got, err := services.GetUser(ctx, db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAnalyst, got.Role)
	assert.Equal(t, "new@example.com", got.Email)
	assert.False(t, got.IsActive)
	assert.False(t, got.UpdatedAt.Before(created))
}

func TestUpdateDeletedUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := mustCreateUser(t, db, "spinner")
	require.NoError(t, services.DeleteUser(ctx, db, user.ID))

	require.NoError(t, user.SetRole(models.RoleAdmin))
	assert.ErrorIs(t, services.UpdateUser(ctx, db, user), gorm.ErrRecordNotFound)

	_, err := services.GetUser(ctx, db, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := mustCreateUser(t, db, "spinner")

	require.NoError(t, services.DeleteUser(ctx, db, user.ID))
	_, err := services.GetUser(ctx, db, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = services.DeleteUser(ctx, db, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserKeepsNamesAndResults(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := mustCreateUser(t, db, "spinner")
	name := mustCreateName(t, db, "Alice", &user.ID)

	result, err := models.NewGameResult(models.GameResultParams{
		SessionID:            uuid.New(),
		SelectedNameID:       &name.ID,
		SelectedNameSnapshot: services.SnapshotName(name),
		AvailableNames:       services.SnapshotNames([]models.Name{*name}),
		UserID:               &user.ID,
	})
	require.NoError(t, err)
	require.NoError(t, services.RecordGameResult(ctx, db, result))

	require.NoError(t, services.DeleteUser(ctx, db, user.ID))

	gotName, err := services.GetName(ctx, db, name.ID)
	require.NoError(t, err)
	assert.Nil(t, gotName.CreatedBy)

	gotResult, err := services.GetGameResult(ctx, db, result.ID)
	require.NoError(t, err)
	assert.Nil(t, gotResult.UserID)
	require.NotNil(t, gotResult.SelectedNameID)
	assert.Equal(t, name.ID, *gotResult.SelectedNameID)
}
