// game_result.go
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

package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameResult is the append-only record of one completed spin. The snapshot
// and the candidate list are copies taken when the spin completed.
type GameResult struct {
	Base
	SessionID            uuid.UUID         `gorm:"type:char(36);not null;index" json:"session_id"`
	SelectedNameID       *uuid.UUID        `gorm:"type:char(36);index" json:"selected_name_id"`
	SelectedNameSnapshot datatypes.JSONMap `gorm:"not null" json:"selected_name_snapshot"`
	AvailableNames       JSONList          `gorm:"not null" json:"available_names"`
	SpinDurationMS       *int              `gorm:"column:spin_duration_ms" json:"spin_duration_ms"`
	UserID               *uuid.UUID        `gorm:"type:char(36);index" json:"user_id"`
	UserIP               *IPAddress        `json:"user_ip"`
	UserAgent            *string           `gorm:"type:text" json:"user_agent"`

	// Foreign key carriers for migrations; never loaded.
	SelectedName *Name `gorm:"foreignKey:SelectedNameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	User         *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// GameResultParams holds constructor input for a GameResult.
//
// SelectedNameSnapshot must be a JSON object and AvailableNames a JSON array
// of objects; both accept Go maps and slices, datatypes.JSONMap, or raw JSON.
// An empty UserIP means absent.
type GameResultParams struct {
	SessionID            uuid.UUID
	SelectedNameID       *uuid.UUID
	SelectedNameSnapshot any
	AvailableNames       any
	SpinDurationMS       *int
	UserID               *uuid.UUID
	UserIP               string
	UserAgent            *string
}

// NewGameResult validates p and returns a GameResult with a fresh identity.
func NewGameResult(p GameResultParams) (*GameResult, error) {
	g := &GameResult{Base: newBase()}

	if err := g.setSessionID(p.SessionID); err != nil {
		return nil, err
	}
	if err := g.setSelectedNameSnapshot(p.SelectedNameSnapshot); err != nil {
		return nil, err
	}
	if err := g.setAvailableNames(p.AvailableNames); err != nil {
		return nil, err
	}
	if err := g.setSpinDuration(p.SpinDurationMS); err != nil {
		return nil, err
	}
	if err := g.setUserIP(p.UserIP); err != nil {
		return nil, err
	}
	if err := g.setUserAgent(p.UserAgent); err != nil {
		return nil, err
	}
	g.SelectedNameID = copyUUID(p.SelectedNameID)
	g.UserID = copyUUID(p.UserID)
	return g, nil
}

// TableName overrides the table name for GameResult
func (GameResult) TableName() string {
	return "game_results"
}

func (g *GameResult) setSessionID(id uuid.UUID) error {
	v, err := ValidateSessionID(id)
	if err != nil {
		return err
	}
	g.SessionID = v
	return nil
}

func (g *GameResult) setSelectedNameSnapshot(snapshot any) error {
	v, err := ValidateSelectedNameSnapshot(snapshot)
	if err != nil {
		return err
	}
	g.SelectedNameSnapshot = v
	return nil
}

func (g *GameResult) setAvailableNames(names any) error {
	v, err := ValidateAvailableNames(names)
	if err != nil {
		return err
	}
	g.AvailableNames = v
	return nil
}

func (g *GameResult) setSpinDuration(durationMS *int) error {
	v, err := ValidateSpinDuration(durationMS)
	if err != nil {
		return err
	}
	g.SpinDurationMS = v
	return nil
}

func (g *GameResult) setUserAgent(userAgent *string) error {
	v, err := ValidateUserAgent(userAgent)
	if err != nil {
		return err
	}
	g.UserAgent = v
	return nil
}

func (g *GameResult) setUserIP(ip string) error {
	v, err := ValidateUserIP(ip)
	if err != nil {
		return err
	}
	g.UserIP = v
	return nil
}

// SelectedNameLabel is the name shown when the spin stopped, or "Unknown".
func (g *GameResult) SelectedNameLabel() string {
	if name, ok := g.SelectedNameSnapshot["name"]; ok && name != nil {
		return fmt.Sprint(name)
	}
	return "Unknown"
}

// ToMap returns every column of the game result.
func (g *GameResult) ToMap() map[string]any {
	return toMap(g)
}

func (g *GameResult) String() string {
	return fmt.Sprintf("<GameResult(id=%s, session=%s, selected='%s')>", g.ID, g.SessionID, g.SelectedNameLabel())
}

// ValidateSessionID rejects the nil uuid.
func ValidateSessionID(id uuid.UUID) (uuid.UUID, error) {
	if id == uuid.Nil {
		return uuid.Nil, invalid("session_id", "Session ID is required")
	}
	return id, nil
}

// ValidateSelectedNameSnapshot returns a detached copy of snapshot after
// checking it is an object with id and name keys.
func ValidateSelectedNameSnapshot(snapshot any) (datatypes.JSONMap, error) {
	v, err := normalizeJSON(snapshot)
	if err != nil {
		return nil, invalid("selected_name_snapshot", "Selected name snapshot must be an object")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, invalid("selected_name_snapshot", "Selected name snapshot must be an object")
	}
	if !hasNameKeys(obj) {
		return nil, invalid("selected_name_snapshot", "Selected name snapshot must contain fields: id, name")
	}
	return datatypes.JSONMap(obj), nil
}

// ValidateAvailableNames returns a detached copy of names after checking it
// is a non-empty list of objects with id and name keys.
func ValidateAvailableNames(names any) (JSONList, error) {
	v, err := normalizeJSON(names)
	if err != nil {
		return nil, invalid("available_names", "Available names must be a list")
	}
	items, ok := v.([]any)
	if !ok {
		return nil, invalid("available_names", "Available names must be a list")
	}
	if len(items) == 0 {
		return nil, invalid("available_names", "Available names cannot be empty")
	}

	list := make(JSONList, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, invalid("available_names", "Each available name must be an object")
		}
		if !hasNameKeys(obj) {
			return nil, invalid("available_names", "Each available name must have 'id' and 'name' fields")
		}
		list = append(list, datatypes.JSONMap(obj))
	}
	return list, nil
}

// ValidateUserIP parses ip; empty input means absent.
func ValidateUserIP(ip string) (*IPAddress, error) {
	if ip == "" {
		return nil, nil
	}
	addr, err := ParseIPAddress(ip)
	if err != nil {
		return nil, invalid("user_ip", "User IP must be a valid IP address")
	}
	return &addr, nil
}

func hasNameKeys(obj map[string]any) bool {
	_, hasID := obj["id"]
	_, hasName := obj["name"]
	return hasID && hasName
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
