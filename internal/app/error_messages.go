// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// six-cities HTTP controllers and the domain error mapper.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of HTTP error responses.
package app

const (
	// MsgUserAlreadyExists is returned when registration is rejected because
	// the requested email is already in use.
	MsgUserAlreadyExists = "User with this email already exists."

	// MsgWrongCredentials is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgWrongCredentials = "Incorrect email or password."

	// MsgForbidden is returned when the authenticated user attempts to
	// modify a resource that belongs to a different user.
	MsgForbidden = "Access to the resource is forbidden."

	// MsgUnauthorized is returned when a token is valid but the account it
	// names no longer exists.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidQueryParameter is returned when a query parameter such as
	// limit cannot be parsed.
	MsgInvalidQueryParameter = "Invalid query parameter"
)
