package flag

import "github.com/relware/distpub/model"

type service struct{}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
	ParseArgs(args []string) (model.Flags, error)
}
