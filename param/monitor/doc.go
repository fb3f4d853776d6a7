// Package monitor receives notifications about completed parameter
// conversions. Monitors are fire-and-forget: they never influence the
// conversion result.
package monitor
