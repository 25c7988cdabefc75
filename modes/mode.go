package modes

// Mode tells providers which environment they are wiring for. Anything
// other than ModeProduction must stay away from host state: config files,
// proxies, the journal of the developer's machine.
type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
	ModeTest
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	case ModeTest:
		return "test"
	}
	return "unknown"
}
