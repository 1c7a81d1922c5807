// Package utils provides general-purpose helpers used across the server:
// access token signing and verification, object identifier generation,
// JSON response writing and an HTTP client wrapper.
package utils
