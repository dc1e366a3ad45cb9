package dnc

import "fmt"

// A Subsystem identifies which part of the memory module failed to
// initialize.
type Subsystem int

// Subsystems in allocation order.
const (
	SubsystemBank Subsystem = iota
	SubsystemUsage
	SubsystemHeads
	SubsystemController
)

func (s Subsystem) String() string {
	switch s {
	case SubsystemBank:
		return "memory bank"
	case SubsystemUsage:
		return "usage tracker"
	case SubsystemHeads:
		return "heads"
	case SubsystemController:
		return "controller"
	default:
		return fmt.Sprintf("subsystem(%d)", int(s))
	}
}

// An InitError reports which subsystem aborted initialization. Subsystems
// allocated before the failure are left releasable; the caller is
// expected to call Release on the partially initialized component.
type InitError struct {
	Subsystem Subsystem
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("dnc: %s initialization: %v", e.Subsystem, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Code returns a stable numeric range identifying the failed subsystem,
// usable in logs and exit statuses.
func (e *InitError) Code() int {
	switch e.Subsystem {
	case SubsystemBank:
		return 2000
	case SubsystemUsage:
		return 3000
	case SubsystemHeads:
		return 4000
	case SubsystemController:
		return 5000
	default:
		return 1000
	}
}
