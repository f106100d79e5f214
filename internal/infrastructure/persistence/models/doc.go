// Package models contains the GORM database models (infrastructure concern).
// The underlying tables are owned by the application schema; the toolkit only
// maps the columns it reads or writes.
package models
