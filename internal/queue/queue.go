package queue

import "errors"

var (
	ErrorClientUndefined          = errors.New("client_undefined")
	ErrorStreamingClientUndefined = errors.New("streaming_client_undefined")
	ErrorNotInitialized           = errors.New("not_initialized")
)

var instance Instance

// Instance is a handle to the event bus that tenant lifecycle events
// are published on.
type Instance interface {
	Push(PushOpts) (*PushOutput, error)
	Close() error
}

// Get returns the configured queue instance, falling back to an
// in-memory sink when nothing was initialised so that event emission
// never blocks the workflow that triggered it.
func Get() Instance {
	if instance == nil {
		instance = &memoryQueue{}
	}
	return instance
}

type PushOpts struct {
	Data   []byte
	Queue  QueueOpts
	Stream *StreamOpts
}

type PushOutput struct {
	MessageSizeBytes int
	Queue            QueueOpts
}

type QueueOpts struct {
	Stream  string
	Subject string
}

type StreamOpts struct {
	MaxMessagesCount int64
	MaxSizeBytes     int64
	ReplicaCount     int
}
