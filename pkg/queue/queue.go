package queue

// Queue represents a basic bounded FIFO queue.
type Queue interface {
	Enqueue(item interface{}) error
	Dequeue() (interface{}, bool)
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
