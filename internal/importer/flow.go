package importer

import (
	"fmt"

	"github.com/jithinio/brillo/internal/importer/csvx"
	"github.com/jithinio/brillo/internal/importer/mapping"
)

// The import flow is a tagged union over its five phases. Each state carries
// exactly the data valid in that phase, so a reset can never leave stale
// results visible, and transitions are pure functions over (state, event).

type State interface{ stateName() string }

type UploadState struct{}

type MappingState struct {
	Table    *csvx.Table
	Mappings []mapping.Mapping
}

type ConfirmState struct {
	Table         *csvx.Table
	Mappings      []mapping.Mapping
	ImportClients bool
}

type ImportingState struct {
	Table         *csvx.Table
	Mappings      []mapping.Mapping
	ImportClients bool
	Percent       int
}

type CompleteState struct {
	Result *Result
}

func (UploadState) stateName() string    { return "upload" }
func (MappingState) stateName() string   { return "mapping" }
func (ConfirmState) stateName() string   { return "confirm" }
func (ImportingState) stateName() string { return "importing" }
func (CompleteState) stateName() string  { return "complete" }

type Event interface{ eventName() string }

type FileParsed struct {
	Table    *csvx.Table
	Mappings []mapping.Mapping
}

type MappingConfirmed struct {
	ImportClients bool
}

type ImportStarted struct{}

type Progressed struct {
	Percent int
}

type Finished struct {
	Result *Result
}

type Reset struct{}

func (FileParsed) eventName() string       { return "file_parsed" }
func (MappingConfirmed) eventName() string { return "mapping_confirmed" }
func (ImportStarted) eventName() string    { return "import_started" }
func (Progressed) eventName() string       { return "progressed" }
func (Finished) eventName() string         { return "finished" }
func (Reset) eventName() string            { return "reset" }

// Next applies an event to a state. Reset is the one event valid everywhere;
// anything else out of place is an error rather than silently ignored.
func Next(s State, e Event) (State, error) {
	if _, ok := e.(Reset); ok {
		return UploadState{}, nil
	}

	switch st := s.(type) {
	case UploadState:
		if ev, ok := e.(FileParsed); ok {
			return MappingState{Table: ev.Table, Mappings: ev.Mappings}, nil
		}
	case MappingState:
		if ev, ok := e.(MappingConfirmed); ok {
			return ConfirmState{
				Table:         st.Table,
				Mappings:      st.Mappings,
				ImportClients: ev.ImportClients,
			}, nil
		}
	case ConfirmState:
		if _, ok := e.(ImportStarted); ok {
			return ImportingState{
				Table:         st.Table,
				Mappings:      st.Mappings,
				ImportClients: st.ImportClients,
			}, nil
		}
	case ImportingState:
		switch ev := e.(type) {
		case Progressed:
			if ev.Percent < st.Percent {
				return nil, fmt.Errorf("progress went backwards: %d -> %d", st.Percent, ev.Percent)
			}

			st.Percent = ev.Percent

			return st, nil
		case Finished:
			return CompleteState{Result: ev.Result}, nil
		}
	}

	return nil, fmt.Errorf("event %s is not valid in state %s", e.eventName(), s.stateName())
}
