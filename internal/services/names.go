// names.go
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

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/localnerve/roulette-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// CreateName inserts a validated name. A CreatedBy that matches no user is
// rejected by the foreign key, see IsForeignKeyViolation.
func CreateName(ctx context.Context, db *gorm.DB, name *models.Name) error {
	return db.WithContext(ctx).Create(name).Error
}

// GetName loads a name by id, gorm.ErrRecordNotFound if absent.
func GetName(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.Name, error) {
	var name models.Name
	if err := db.WithContext(ctx).First(&name, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &name, nil
}

// UpdateName writes every column of name and refreshes updated_at,
// gorm.ErrRecordNotFound if the name was deleted.
func UpdateName(ctx context.Context, db *gorm.DB, name *models.Name) error {
	return updateByID(ctx, db, name)
}

// DeleteName removes a name. Game results that selected it keep their
// snapshot and lose only the reference.
func DeleteName(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return deleteByID(ctx, db, &models.Name{}, id)
}

// ListActiveNames returns the names eligible for a spin, ordered by name.
func ListActiveNames(ctx context.Context, db *gorm.DB) ([]models.Name, error) {
	var names []models.Name
	err := db.WithContext(ctx).
		Clauses(hints.Comment("select", "roulette:list_active_names")).
		Where("is_active = ?", true).
		Order("name").Order("id").
		Find(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ListNamesByCreator returns the names created by userID, oldest first.
func ListNamesByCreator(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]models.Name, error) {
	var names []models.Name
	err := db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at").Order("id").
		Find(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
