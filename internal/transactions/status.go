package transactions

// Status tracks a checkout through its lifecycle. Only COMMITTED and
// ABORTED are ever persisted; the intermediate states exist so the
// service can report exactly where a checkout failed.
type Status string

const (
	StatusStarted    Status = "STARTED"
	StatusValidating Status = "VALIDATING"
	StatusReserving  Status = "RESERVING"
	StatusPersisting Status = "PERSISTING"
	StatusCommitted  Status = "COMMITTED"
	StatusAborted    Status = "ABORTED"
)

var statusTransitions = map[Status][]Status{
	StatusStarted:    {StatusValidating, StatusAborted},
	StatusValidating: {StatusReserving, StatusAborted},
	StatusReserving:  {StatusPersisting, StatusAborted},
	StatusPersisting: {StatusCommitted, StatusAborted},
	StatusCommitted:  {},
	StatusAborted:    {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCommitted || s == StatusAborted
}
