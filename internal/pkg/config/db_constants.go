package config

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Target names for the two database instances the toolkit operates on.
const (
	TargetDev  = "dev"
	TargetProd = "prod"
	TargetAll  = "all"
)
