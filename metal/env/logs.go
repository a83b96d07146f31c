package env

type LogsEnvironment struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	Dir        string `validate:"required"`
	DateFormat string `validate:"required"`
}

type SentryEnvironment struct {
	DSN string `validate:"omitempty,url"`
}

func (s SentryEnvironment) Enabled() bool {
	return s.DSN != ""
}

// BackupEnvironment drives the nightly pg_dump cron routine.
type BackupEnvironment struct {
	Enabled bool   `validate:"-"`
	Cron    string `validate:"required_if=Enabled true,omitempty,cron"`
	Dir     string `validate:"required_if=Enabled true"`
}
