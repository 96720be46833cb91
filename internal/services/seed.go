// seed.go
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/localnerve/roulette-api/internal/database"
	"github.com/localnerve/roulette-api/internal/models"
	"github.com/localnerve/roulette-api/internal/types"
	"gorm.io/gorm"
)

// SeedFile is the import format for cmd/seed. Either list may be a single
// object instead of an array.
type SeedFile struct {
	Users types.FlexList[SeedUser] `json:"users"`
	Names types.FlexList[SeedName] `json:"names"`
}

// SeedUser is a user to import. Password is hashed before storage.
type SeedUser struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	IsActive *bool       `json:"is_active"`
}

// SeedName is a name to import. CreatedBy is a username from the same file
// or already stored.
type SeedName struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Weight      *types.FlexInt `json:"weight"`
	IsActive    *bool          `json:"is_active"`
	CreatedBy   string         `json:"created_by"`
}

// SeedStats counts what Seed created and what already existed.
type SeedStats struct {
	UsersCreated int `json:"users_created"`
	UsersSkipped int `json:"users_skipped"`
	NamesCreated int `json:"names_created"`
	NamesSkipped int `json:"names_skipped"`
}

// ParseSeed decodes a seed file, rejecting unknown fields.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var file SeedFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &file, nil
}

// Seed imports file in one transaction. Users are matched by username and
// names by name, so running the same file twice creates nothing new.
func Seed(ctx context.Context, db *gorm.DB, file *SeedFile) (SeedStats, error) {
	var stats SeedStats

	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		for i, su := range file.Users {
			created, err := seedUser(ctx, tx, su)
			if err != nil {
				return fmt.Errorf("users[%d]: %w", i, err)
			}
			if created {
				stats.UsersCreated++
			} else {
				stats.UsersSkipped++
			}
		}

		for i, sn := range file.Names {
			created, err := seedName(ctx, tx, sn)
			if err != nil {
				return fmt.Errorf("names[%d]: %w", i, err)
			}
			if created {
				stats.NamesCreated++
			} else {
				stats.NamesSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return SeedStats{}, err
	}

	slog.Info("Seed complete",
		slog.Int("users_created", stats.UsersCreated),
		slog.Int("users_skipped", stats.UsersSkipped),
		slog.Int("names_created", stats.NamesCreated),
		slog.Int("names_skipped", stats.NamesSkipped),
	)
	return stats, nil
}

func seedUser(ctx context.Context, tx *gorm.DB, su SeedUser) (bool, error) {
	username, err := models.ValidateUsername(su.Username)
	if err != nil {
		return false, err
	}
	if _, err := GetUserByUsername(ctx, tx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if su.Password == "" {
		return false, fmt.Errorf("user %s: password is required", username)
	}
	hash, err := HashPassword(su.Password)
	if err != nil {
		return false, err
	}

	user, err := models.NewUser(models.UserParams{
		Username:     su.Username,
		Email:        su.Email,
		PasswordHash: hash,
		Role:         su.Role,
		IsActive:     su.IsActive,
	})
	if err != nil {
		return false, err
	}
	return true, CreateUser(ctx, tx, user)
}

func seedName(ctx context.Context, tx *gorm.DB, sn SeedName) (bool, error) {
	name, err := models.NewName(models.NameParams{
		Name:        sn.Name,
		Description: sn.Description,
		IsActive:    sn.IsActive,
		Weight:      sn.Weight.Ptr(),
	})
	if err != nil {
		return false, err
	}

	var count int64
	if err := tx.WithContext(ctx).Model(&models.Name{}).Where("name = ?", name.Name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if sn.CreatedBy != "" {
		creator, err := GetUserByUsername(ctx, tx, sn.CreatedBy)
		if err != nil {
			return false, fmt.Errorf("name %s: creator %s: %w", name.Name, sn.CreatedBy, err)
		}
		name.SetCreatedBy(&creator.ID)
	}
	return true, CreateName(ctx, tx, name)
}
