package model

// Flags contains parsed command-line flag values.
type Flags struct {
	Host            string
	User            string
	Port            int
	RemoteBase      string
	DistDir         string
	Target          string
	Bucket          string
	Region          string
	Profile         string
	Identity        string
	InsecureHostKey bool
	Workers         int
	DryRun          bool
	Version         bool
	Output          string
	Store           bool
	DBPath          string
	ConfigPath      string
}
