package domain

// ConfigProvider provides configuration paths and defaults.
type ConfigProvider interface {
	GetConfigDir() (string, error)
	GetConfigPath() (string, error)
	GetSessionPath() (string, error)
	GetDatabasePath() (string, error)
}
