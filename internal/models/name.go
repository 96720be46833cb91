// name.go
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
)

// DefaultWeight is the weight of a Name created without one.
const DefaultWeight = 1

// Name is a roulette candidate.
type Name struct {
	Base
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	IsActive    bool       `gorm:"not null;default:true;index" json:"is_active"`
	Weight      int        `gorm:"not null;default:1" json:"weight"`
	CreatedBy   *uuid.UUID `gorm:"type:char(36);index" json:"created_by"`

	// Creator exists so migrations emit the foreign key; it is never loaded.
	Creator *User `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// NameParams holds constructor input for a Name. Nil pointers take the
// defaults: active, weight 1, no description, no creator.
type NameParams struct {
	Name        string
	Description *string
	IsActive    *bool
	Weight      *int
	CreatedBy   *uuid.UUID
}

// NewName validates p and returns a Name with a fresh identity.
func NewName(p NameParams) (*Name, error) {
	n := &Name{Base: newBase(), IsActive: true, Weight: DefaultWeight}

	if err := n.SetName(p.Name); err != nil {
		return nil, err
	}
	if err := n.SetDescription(p.Description); err != nil {
		return nil, err
	}
	if p.Weight != nil {
		if err := n.SetWeight(*p.Weight); err != nil {
			return nil, err
		}
	}
	if p.IsActive != nil {
		n.SetActive(*p.IsActive)
	}
	n.SetCreatedBy(p.CreatedBy)
	return n, nil
}

// TableName overrides the table name for Name
func (Name) TableName() string {
	return "names"
}

// SetName stores the trimmed name.
func (n *Name) SetName(name string) error {
	v, err := ValidateName(name)
	if err != nil {
		return err
	}
	n.Name = v
	return nil
}

// SetDescription stores the trimmed description; blank input clears it.
func (n *Name) SetDescription(description *string) error {
	v, err := ValidateDescription(description)
	if err != nil {
		return err
	}
	n.Description = v
	return nil
}

// SetWeight stores a weight in [1, 1000].
func (n *Name) SetWeight(weight int) error {
	v, err := ValidateWeight(weight)
	if err != nil {
		return err
	}
	n.Weight = v
	return nil
}

// SetActive includes or excludes the name from spins.
func (n *Name) SetActive(active bool) {
	n.IsActive = active
}

// SetCreatedBy records the creating user, nil for none.
func (n *Name) SetCreatedBy(userID *uuid.UUID) {
	if userID == nil {
		n.CreatedBy = nil
		return
	}
	id := *userID
	n.CreatedBy = &id
}

// ToMap returns every column of the name.
func (n *Name) ToMap() map[string]any {
	return toMap(n)
}

func (n *Name) String() string {
	status := "active"
	if !n.IsActive {
		status = "inactive"
	}
	return fmt.Sprintf("<Name(id=%s, name='%s', %s, weight=%d)>", n.ID, n.Name, status, n.Weight)
}
