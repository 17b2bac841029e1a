package syncer

// Trigger is the in-process deferred-sync mechanism. Registrations coalesce:
// any number of Register calls before the worker wakes collapse into one
// pending request, matching one sweep per trigger event.
type Trigger struct {
	requests chan string
}

func NewTrigger() *Trigger {
	return &Trigger{requests: make(chan string, 1)}
}

// Register requests a sync wakeup under the given tag. Never blocks; a
// wakeup already pending absorbs the new request.
func (t *Trigger) Register(tag string) error {
	select {
	case t.requests <- tag:
	default:
	}
	return nil
}

// Requests is consumed by the sync worker.
func (t *Trigger) Requests() <-chan string {
	return t.requests
}
