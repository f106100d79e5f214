// Package app implements the operational services behind the CLI commands:
// applying migrations, verifying schema state, cleaning up audit logs and
// backfilling user profiles.
package app
