package config

const (
	defaultLogDir    = "~/.local/share/plugvault/logs"
	defaultStateDir  = "~/.local/share/plugvault"
	defaultTrashDir  = "~/.Trash"
	defaultBackupDir = "~/Documents/PluginBackups"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
			TrashDir: defaultTrashDir,
		},
		Backup: Backup{
			DestinationDir: defaultBackupDir,
		},
		Removal: Removal{
			Permanent: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
