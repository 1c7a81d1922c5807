// Package http implements the HTTP transport layer of the six-cities API.
//
// It wires the offer, user and comment controllers into a [rest.App],
// maps domain errors onto HTTP errors and carries the plain chi routes that
// live outside the controllers: build version, Prometheus metrics and the
// static and uploaded files. Request tracing, access logging, metrics and
// CORS run as chi middleware before any controller sees the request.
package http
