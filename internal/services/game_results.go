// game_results.go
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
)

// RecordGameResult appends a completed spin. Game results are never updated.
func RecordGameResult(ctx context.Context, db *gorm.DB, result *models.GameResult) error {
	return db.WithContext(ctx).Create(result).Error
}

// GetGameResult loads a game result by id, gorm.ErrRecordNotFound if absent.
func GetGameResult(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.GameResult, error) {
	var result models.GameResult
	if err := db.WithContext(ctx).First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListGameResultsBySession returns the spins of one session, newest first.
func ListGameResultsBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]models.GameResult, error) {
	return listGameResults(ctx, db, "session_id = ?", sessionID)
}

// ListGameResultsByUser returns the spins attributed to userID, newest first.
func ListGameResultsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]models.GameResult, error) {
	return listGameResults(ctx, db, "user_id = ?", userID)
}

// ListGameResultsForName returns the spins that selected nameID, newest first.
func ListGameResultsForName(ctx context.Context, db *gorm.DB, nameID uuid.UUID) ([]models.GameResult, error) {
	return listGameResults(ctx, db, "selected_name_id = ?", nameID)
}

func listGameResults(ctx context.Context, db *gorm.DB, query string, id uuid.UUID) ([]models.GameResult, error) {
	var results []models.GameResult
	err := db.WithContext(ctx).
		Where(query, id).
		Order("created_at DESC").Order("id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
