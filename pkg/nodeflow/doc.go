// Package nodeflow provides a minimal public façade for building and
// running dataflow node graphs without importing internal packages. It
// re-exports the core types for convenience and exposes an Editor with
// simple methods to create, wire, persist and restore flows.
package nodeflow
