package appconf

// Environment represents the operating environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps an environment name from a flag or environment
// variable to an Environment value. Unknown names fall back to Development.
func EnvFlagToEnvironment(name string) Environment {
	switch name {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
