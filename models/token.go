// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenPayload is the identity carried by an access token.
//
// It is produced by verifying the "Authorization" header of a request and
// lives only as long as that request; it is never persisted.
type TokenPayload struct {
	ID     string `json:"id"`
	Mail   string `json:"mail"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	IsPro  bool   `json:"isPro"`
}

// NewTokenPayload builds the token identity for u.
func NewTokenPayload(u User) TokenPayload {
	return TokenPayload{
		ID:     u.ID,
		Mail:   u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
		IsPro:  u.IsPro(),
	}
}
