package parser

import "github.com/vuuvv/vnmea/core"

// DecodeFunc decodes one tokenized sentence into the context's module state.
type DecodeFunc func(c *Context, s *Sentence) error

// Entry binds a sentence type to its decoder.
type Entry struct {
	Type      string
	Decode    DecodeFunc
	Module    core.ModuleID
	MinFields int
}

// dispatchTable is assembled from the per-module entry lists. A module built
// with its vnmea_no_<module> tag contributes nothing, so its decoders are not
// linked in.
var dispatchTable = joinEntries(
	gnssEntries,
	aisEntries,
	headingEntries,
	depthEntries,
	windEntries,
	speedEntries,
	navigationEntries,
	environmentEntries,
	garminEntries,
)

func joinEntries(lists ...[]Entry) []Entry {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Entry, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// lookup scans the table by sentence type only; the talker plays no part.
func lookup(typ []byte) *Entry {
	for i := range dispatchTable {
		if dispatchTable[i].Type == string(typ) {
			return &dispatchTable[i]
		}
	}
	return nil
}

// catalog lists every sentence type this library has a decoder for, compiled
// in or not. It separates "disabled in this build" from "never heard of it".
var catalog = [...]struct {
	Type   string
	Module core.ModuleID
}{
	{"GGA", core.ModuleGNSS},
	{"RMC", core.ModuleGNSS},
	{"GLL", core.ModuleGNSS},
	{"GSA", core.ModuleGNSS},
	{"GSV", core.ModuleGNSS},
	{"VTG", core.ModuleGNSS},
	{"ZDA", core.ModuleGNSS},
	{"GST", core.ModuleGNSS},
	{"VDM", core.ModuleAIS},
	{"VDO", core.ModuleAIS},
	{"HDT", core.ModuleHeading},
	{"HDG", core.ModuleHeading},
	{"HDM", core.ModuleHeading},
	{"ROT", core.ModuleHeading},
	{"DBT", core.ModuleDepth},
	{"DPT", core.ModuleDepth},
	{"MWV", core.ModuleWind},
	{"MWD", core.ModuleWind},
	{"VHW", core.ModuleSpeed},
	{"VLW", core.ModuleSpeed},
	{"RMB", core.ModuleNavigation},
	{"XTE", core.ModuleNavigation},
	{"BOD", core.ModuleNavigation},
	{"MTW", core.ModuleEnvironment},
	{"MDA", core.ModuleEnvironment},
	{"GRME", core.ModuleGarmin},
	{"GRMZ", core.ModuleGarmin},
}

func catalogued(typ []byte) bool {
	for i := range catalog {
		if catalog[i].Type == string(typ) {
			return true
		}
	}
	return false
}

// Entries returns a copy of the dispatch table in lookup order.
func Entries() []Entry {
	out := make([]Entry, len(dispatchTable))
	copy(out, dispatchTable)
	return out
}

// SentenceTypes lists the sentence types compiled into this build.
func SentenceTypes() []string {
	out := make([]string, len(dispatchTable))
	for i, e := range dispatchTable {
		out[i] = e.Type
	}
	return out
}

// ModuleCompiled reports whether any decoder of module is linked in.
func ModuleCompiled(module core.ModuleID) bool {
	for i := range dispatchTable {
		if dispatchTable[i].Module == module {
			return true
		}
	}
	return false
}
