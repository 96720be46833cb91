// user.go
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

import "fmt"

// User is an account that can curate names and play spins.
type User struct {
	Base
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null;default:user" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}

// UserParams holds constructor input for a User. Zero Role means RoleUser,
// nil IsActive means active.
type UserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     *bool
}

// NewUser validates p and returns a User with a fresh identity.
func NewUser(p UserParams) (*User, error) {
	u := &User{Base: newBase(), Role: RoleUser, IsActive: true}

	if err := u.SetUsername(p.Username); err != nil {
		return nil, err
	}
	if err := u.SetEmail(p.Email); err != nil {
		return nil, err
	}
	u.SetPasswordHash(p.PasswordHash)
	if p.Role != "" {
		if err := u.SetRole(p.Role); err != nil {
			return nil, err
		}
	}
	if p.IsActive != nil {
		u.SetActive(*p.IsActive)
	}
	return u, nil
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// SetUsername stores the trimmed username.
func (u *User) SetUsername(username string) error {
	v, err := ValidateUsername(username)
	if err != nil {
		return err
	}
	u.Username = v
	return nil
}

// SetEmail stores the normalized email.
func (u *User) SetEmail(email string) error {
	v, err := ValidateEmail(email)
	if err != nil {
		return err
	}
	u.Email = v
	return nil
}

// SetRole stores role if it is known.
func (u *User) SetRole(role Role) error {
	v, err := ValidateRole(role)
	if err != nil {
		return err
	}
	u.Role = v
	return nil
}

// SetPasswordHash stores an already hashed password. Hashing is the caller's job.
func (u *User) SetPasswordHash(hash string) {
	u.PasswordHash = hash
}

// SetActive marks the user active or inactive.
func (u *User) SetActive(active bool) {
	u.IsActive = active
}

// ToMap returns every column of the user.
func (u *User) ToMap() map[string]any {
	return toMap(u)
}

func (u *User) String() string {
	return fmt.Sprintf("<User(id=%s, username='%s', role='%s')>", u.ID, u.Username, u.Role)
}
