//go:build !no_otel

// Package otel shims the OpenTelemetry tracer so that binaries
// built with the no_otel tag drop the dependency entirely.
package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
