// Package citelean rewrites LaTeX sources, replacing cite-lean(...) markers
// with hyperlink macros into the generated documentation of a Lean library
// and flagging markers whose declaration is unknown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., msgpack/, http/, slog/).
package citelean
