// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserType distinguishes regular accounts from pro (host) accounts.
type UserType string

const (
	UserTypeRegular UserType = "regular"
	UserTypePro     UserType = "pro"
)

// User is a registered account.
// PasswordHash never leaves the service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	Avatar       string
	PasswordHash string
	Type         UserType
	CreatedAt    time.Time
}

// IsPro reports whether the account is a pro account.
func (u User) IsPro() bool {
	return u.Type == UserTypePro
}
