// Package factbook provides a local, CLI-based country fact lookup tool.
// It parses pre-downloaded country fact pages into an in-memory knowledge
// base, resolves free-text topic queries against it, and derives simple
// Live/Work/Travel suggestions from tabular country data.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, zip/, inmem/).
package factbook
