package queue

import "sync"

// InitMemory initialises the singleton queue instance with an
// in-process sink. Pushed messages are retained for inspection, which
// the tests rely on.
func InitMemory() *memoryQueue {
	memoryInstance := &memoryQueue{}
	instance = memoryInstance
	return memoryInstance
}

type memoryQueue struct {
	mutex    sync.Mutex
	messages []PushOpts
}

func (m *memoryQueue) Push(opts PushOpts) (*PushOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.messages = append(m.messages, opts)
	return &PushOutput{
		MessageSizeBytes: len(opts.Data),
		Queue:            opts.Queue,
	}, nil
}

func (m *memoryQueue) Close() error {
	return nil
}

func (m *memoryQueue) Messages() []PushOpts {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]PushOpts{}, m.messages...)
}
