// Package config holds the command line configuration of the book server
// and the OpenTelemetry provider setup used when observability is enabled.
package config
