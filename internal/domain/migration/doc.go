// Package migration defines the entities and contracts for applying SQL
// migrations: splitting migration files into executable statements,
// classifying statements, and recording per-statement outcomes.
package migration
