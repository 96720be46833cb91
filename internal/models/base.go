// base.go
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
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Base carries the identity and timestamps shared by every persisted entity.
type Base struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Entity is implemented by User, Name and GameResult.
type Entity interface {
	fmt.Stringer
	EntityID() uuid.UUID
	TableName() string
	ToMap() map[string]any
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the entity's identifier.
func (b *Base) EntityID() uuid.UUID {
	return b.ID
}

// BeforeCreate assigns an identifier to rows built without a constructor.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

var schemaCache = &sync.Map{}

// toMap maps every column of entity to its live value. Optional fields
// are dereferenced, nil ones map to nil.
func toMap(entity any) map[string]any {
	s, err := schema.Parse(entity, schemaCache, schema.NamingStrategy{})
	if err != nil {
		panic(fmt.Sprintf("models: parse schema of %T: %v", entity, err))
	}

	rv := reflect.ValueOf(entity)
	out := make(map[string]any, len(s.DBNames))
	for _, dbName := range s.DBNames {
		field := s.FieldsByDBName[dbName]
		value, _ := field.ValueOf(context.Background(), rv)
		out[dbName] = indirect(value)
	}
	return out
}

func indirect(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer {
		return value
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
