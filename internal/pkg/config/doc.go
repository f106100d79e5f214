// Package config provides functionality for loading and managing tool configuration.
//
// This package handles loading settings from dotenv files and environment
// variables, validating them, and making them accessible throughout the
// toolkit. It centralizes configuration management for easier modification
// and extension.
package config
