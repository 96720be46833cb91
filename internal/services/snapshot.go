// snapshot.go
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
	"github.com/localnerve/roulette-api/internal/models"
	"gorm.io/datatypes"
)

// SnapshotName captures the fields of name a game result keeps after the
// name changes or is deleted.
func SnapshotName(name *models.Name) datatypes.JSONMap {
	return datatypes.JSONMap{
		"id":        name.ID.String(),
		"name":      name.Name,
		"weight":    name.Weight,
		"is_active": name.IsActive,
	}
}

// SnapshotNames captures every candidate offered to a spin, in order.
func SnapshotNames(names []models.Name) []datatypes.JSONMap {
	out := make([]datatypes.JSONMap, len(names))
	for i := range names {
		out[i] = SnapshotName(&names[i])
	}
	return out
}
