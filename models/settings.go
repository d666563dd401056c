// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme selects the colour scheme of the host application.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeSepia Theme = "sepia"
)

// DefaultUserName is shown until the user picks a name.
const DefaultUserName = "Philosopher"

// Settings is the single settings record of the vault. It is stored in
// plaintext.
type Settings struct {
	UserName string `json:"userName" validate:"max=128"`
	Theme    Theme  `json:"theme" validate:"required,oneof=light dark sepia"`

	// BirthDate is an optional YYYY-MM-DD date used by the memento mori
	// view.
	BirthDate *string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DefaultSettings returns the settings used when none have been stored yet.
func DefaultSettings() Settings {
	return Settings{
		UserName: DefaultUserName,
		Theme:    ThemeLight,
	}
}
