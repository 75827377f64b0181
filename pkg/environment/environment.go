package environment

import (
	"fmt"
	"strings"
)

// Environment names the deployment the binary runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes an environment name, accepting the short aliases
// dev, stage and prod. An empty name means Development.
func Parse(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
}

func (e Environment) String() string {
	return string(e)
}
