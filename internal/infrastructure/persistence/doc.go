// Package persistence provides database connectivity and GORM-based
// repository implementations for the domain contracts, plus the catalog
// inspector used by schema verification.
package persistence
