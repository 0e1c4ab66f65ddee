package flag

import (
	"fmt"
	"os"

	"github.com/relware/distpub/model"
	"github.com/spf13/pflag"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses os.Args and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	return s.ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list into flags.
func (s *service) ParseArgs(args []string) (model.Flags, error) {
	fs := pflag.NewFlagSet("distpub", pflag.ContinueOnError)

	host := fs.StringP("host", "H", "", "Remote host to publish to")
	user := fs.StringP("user", "u", "", "Remote account name")
	port := fs.Int("port", 0, "Remote SSH port")
	remoteBase := fs.String("remote-base", "", "Remote base directory for releases")
	distDir := fs.StringP("dist-dir", "d", "", "Local distribution directory (default: <executable dir>/../dist)")
	target := fs.StringP("target", "t", "", "Upload target (sftp or s3)")
	bucket := fs.String("bucket", "", "S3 bucket name (required for s3 target)")
	region := fs.String("region", "", "AWS region for the s3 target")
	profile := fs.String("profile", "", "AWS profile for the s3 target")
	identity := fs.StringP("identity", "i", "", "SSH identity file for public key auth")
	insecure := fs.Bool("insecure-host-key", false, "Skip SSH host key verification")
	workers := fs.Int("workers", 0, "Concurrent uploads (default 1, fully sequential)")
	dryRun := fs.Bool("dry-run", false, "Print the upload plan without connecting")
	version := fs.BoolP("version", "v", false, "Show version information")
	output := fs.StringP("output", "o", "table", "Output format (table or json)")
	store := fs.Bool("store", false, "Record the release in the local SQLite history database")
	dbPath := fs.String("db-path", "", "Custom SQLite database path (default ~/.distpub/history.db)")
	configPath := fs.String("config-path", "", "Path to distpub config file")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return model.Flags{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	return model.Flags{
		Host:            *host,
		User:            *user,
		Port:            *port,
		RemoteBase:      *remoteBase,
		DistDir:         *distDir,
		Target:          *target,
		Bucket:          *bucket,
		Region:          *region,
		Profile:         *profile,
		Identity:        *identity,
		InsecureHostKey: *insecure,
		Workers:         *workers,
		DryRun:          *dryRun,
		Version:         *version,
		Output:          *output,
		Store:           *store,
		DBPath:          *dbPath,
		ConfigPath:      *configPath,
	}, nil
}
