package core

import "strings"

// ModuleID names a group of related sentence types sharing one state block
// and one enable bit.
type ModuleID uint8

const (
	ModuleGNSS ModuleID = iota
	ModuleAIS
	ModuleHeading
	ModuleDepth
	ModuleWind
	ModuleSpeed
	ModuleNavigation
	ModuleEnvironment
	ModuleGarmin
	ModuleCount
)

// MaxModules is the width of ModuleMask.
const MaxModules = 32

var moduleNames = [ModuleCount]string{
	ModuleGNSS:        "gnss",
	ModuleAIS:         "ais",
	ModuleHeading:     "heading",
	ModuleDepth:       "depth",
	ModuleWind:        "wind",
	ModuleSpeed:       "speed",
	ModuleNavigation:  "navigation",
	ModuleEnvironment: "environment",
	ModuleGarmin:      "garmin",
}

func (m ModuleID) String() string {
	if m >= ModuleCount {
		return "unknown"
	}
	return moduleNames[m]
}

func (m ModuleID) Bit() ModuleMask {
	if m >= MaxModules {
		return 0
	}
	return 1 << m
}

// ParseModuleName maps a configuration name onto a ModuleID.
func ParseModuleName(name string) (ModuleID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range moduleNames {
		if n == name {
			return ModuleID(id), true
		}
	}
	return 0, false
}

// ModuleMask has one enable bit per ModuleID.
type ModuleMask uint32

// AllModules enables every module this library defines.
const AllModules ModuleMask = 1<<ModuleCount - 1

func Modules(ids ...ModuleID) ModuleMask {
	var m ModuleMask
	for _, id := range ids {
		m |= id.Bit()
	}
	return m
}

func (m ModuleMask) Has(id ModuleID) bool {
	bit := id.Bit()
	return bit != 0 && m&bit != 0
}

func (m ModuleMask) With(id ModuleID) ModuleMask {
	return m | id.Bit()
}

func (m ModuleMask) Without(id ModuleID) ModuleMask {
	return m &^ id.Bit()
}

// Names lists the enabled modules in ModuleID order.
func (m ModuleMask) Names() []string {
	var out []string
	for id := ModuleID(0); id < ModuleCount; id++ {
		if m.Has(id) {
			out = append(out, id.String())
		}
	}
	return out
}
