// validation.go
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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field limits enforced on assignment.
const (
	UsernameMinLength    = 3
	UsernameMaxLength    = 50
	EmailMaxLength       = 255
	NameMaxLength        = 255
	DescriptionMaxLength = 1000
	WeightMin            = 1
	WeightMax            = 1000
	SpinDurationMaxMS    = 300000
	UserAgentMaxLength   = 1000
)

// ValidationError reports a rejected field assignment. Message is suitable
// for presenting to end users.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// length counts characters, not bytes.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

// ValidateRole checks role membership.
func ValidateRole(role Role) (Role, error) {
	if !role.IsValid() {
		return "", invalid("role", fmt.Sprintf("Role must be one of: %s", strings.Join(Roles.Strings(), ", ")))
	}
	return role, nil
}

// ValidateUsername checks length and the allowed character set and returns
// the trimmed username. The character check runs on the raw input, so
// surrounding whitespace is rejected as a disallowed character.
func ValidateUsername(username string) (string, error) {
	if username == "" || length(strings.TrimSpace(username)) < UsernameMinLength {
		return "", invalid("username", "Username must be at least 3 characters long")
	}
	if length(username) > UsernameMaxLength {
		return "", invalid("username", "Username cannot exceed 50 characters")
	}
	if !isUsernameCharset(username) {
		return "", invalid("username", "Username can only contain letters, numbers, underscore, and hyphen")
	}
	return strings.TrimSpace(username), nil
}

func isUsernameCharset(username string) bool {
	rest := strings.NewReplacer("_", "", "-", "").Replace(username)
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// ValidateEmail performs a basic format check and returns the email
// lower-cased and trimmed.
func ValidateEmail(email string) (string, error) {
	if email == "" || !strings.Contains(email, "@") {
		return "", invalid("email", "Valid email address is required")
	}
	if length(email) > EmailMaxLength {
		return "", invalid("email", "Email address cannot exceed 255 characters")
	}
	return strings.TrimSpace(strings.ToLower(email)), nil
}

// ValidateName returns the trimmed name. The length limit applies to the
// input as given, padding included.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("name", "Name cannot be empty")
	}
	if length(name) > NameMaxLength {
		return "", invalid("name", "Name cannot exceed 255 characters")
	}
	return trimmed, nil
}

// ValidateWeight checks the selection weight range.
func ValidateWeight(weight int) (int, error) {
	if weight < WeightMin {
		return 0, invalid("weight", "Weight must be at least 1")
	}
	if weight > WeightMax {
		return 0, invalid("weight", "Weight cannot exceed 1000")
	}
	return weight, nil
}

// ValidateDescription returns the trimmed description, or nil when the
// input is nil, empty or whitespace only.
func ValidateDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}
	if length(*description) > DescriptionMaxLength {
		return nil, invalid("description", "Description cannot exceed 1000 characters")
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil, nil
	}
	return &trimmed, nil
}

// ValidateSpinDuration accepts nil or a duration within five minutes.
func ValidateSpinDuration(durationMS *int) (*int, error) {
	if durationMS == nil {
		return nil, nil
	}
	if *durationMS < 0 {
		return nil, invalid("spin_duration_ms", "Spin duration cannot be negative")
	}
	if *durationMS > SpinDurationMaxMS {
		return nil, invalid("spin_duration_ms", "Spin duration cannot exceed 5 minutes")
	}
	d := *durationMS
	return &d, nil
}

// ValidateUserAgent accepts nil or a user agent of at most 1000 characters.
func ValidateUserAgent(userAgent *string) (*string, error) {
	if userAgent == nil {
		return nil, nil
	}
	if length(*userAgent) > UserAgentMaxLength {
		return nil, invalid("user_agent", "User agent cannot exceed 1000 characters")
	}
	ua := *userAgent
	return &ua, nil
}
