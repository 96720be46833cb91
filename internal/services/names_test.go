// names_test.go
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

	"github.com/google/uuid"
	"github.com/localnerve/roulette-api/internal/models"
	"github.com/localnerve/roulette-api/internal/services"
	"github.com/localnerve/roulette-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateAndGetName(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := mustCreateUser(t, db, "spinner")

	name, err := models.NewName(models.NameParams{
		Name:        "  Alice ",
		Description: ptr("first on the wheel"),
		Weight:      ptr(4),
		CreatedBy:   &user.ID,
	})
	require.NoError(t, err)
	require.NoError(t, services.CreateName(ctx, db, name))

	got, err := services.GetName(ctx, db, name.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "first on the wheel", *got.Description)
	assert.Equal(t, 4, got.Weight)
	assert.True(t, got.IsActive)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, user.ID, *got.CreatedBy)
}

func TestCreateNameUnknownCreator(t *testing.T) {
	db := testutil.NewTestDB(t)
	missing := uuid.New()

	name, err := models.NewName(models.NameParams{Name: "Orphan", CreatedBy: &missing})
	require.NoError(t, err)

	err = services.CreateName(ctx, db, name)
	require.Error(t, err)
	assert.True(t, services.IsForeignKeyViolation(err), "got %v", err)
	assert.False(t, services.IsUniqueViolation(err))
}

func TestUpdateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	name := mustCreateName(t, db, "Alice", nil)

	require.NoError(t, name.SetWeight(9))
	require.NoError(t, name.SetDescription(ptr("   ")))
	name.SetActive(false)
	require.NoError(t, services.UpdateName(ctx, db, name))

	got, err := services.GetName(ctx, db, name.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Weight)
	assert.Nil(t, got.Description)
	assert.False(t, got.IsActive)
}

func TestUpdateDeletedName(t *testing.T) {
	db := testutil.NewTestDB(t)
	name := mustCreateName(t, db, "Alice", nil)
	require.NoError(t, services.DeleteName(ctx, db, name.ID))

	require.NoError(t, name.SetWeight(5))
	err := services.UpdateName(ctx, db, name)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.True(t, services.IsNotFound(err))

	_, err = services.GetName(ctx, db, name.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateNameUnchanged(t *testing.T) {
	db := testutil.NewTestDB(t)
	name := mustCreateName(t, db, "Alice", nil)
	require.NoError(t, services.UpdateName(ctx, db, name))
}

func TestDeleteName(t *testing.T) {
	db := testutil.NewTestDB(t)
	name := mustCreateName(t, db, "Alice", nil)

	require.NoError(t, services.DeleteName(ctx, db, name.ID))
	_, err := services.GetName(ctx, db, name.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, services.DeleteName(ctx, db, name.ID), gorm.ErrRecordNotFound)
}

func TestListActiveNames(t *testing.T) {
	db := testutil.NewTestDB(t)
	mustCreateName(t, db, "Carol", nil)
	mustCreateName(t, db, "Alice", nil)
	inactive := mustCreateName(t, db, "Bob", nil)
	inactive.SetActive(false)
	require.NoError(t, services.UpdateName(ctx, db, inactive))

	names, err := services.ListActiveNames(ctx, db)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Alice", names[0].Name)
	assert.Equal(t, "Carol", names[1].Name)
}

func TestListNamesByCreator(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")

	first := mustCreateName(t, db, "First", &alice.ID)
	mustCreateName(t, db, "Other", &bob.ID)
	mustCreateName(t, db, "Nobody", nil)

	names, err := services.ListNamesByCreator(ctx, db, alice.ID)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, first.ID, names[0].ID)

	names, err = services.ListNamesByCreator(ctx, db, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, names)
}
