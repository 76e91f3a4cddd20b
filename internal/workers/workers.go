package workers

import "sync"

// Task is a single unit of background work.
type Task func()

// Pool runs submitted tasks over a fixed number of goroutines.
type Pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

// NewPool starts size goroutines consuming submitted tasks. Sizes below one
// are raised to one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{tasks: make(chan Task)}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer p.wg.Done()

			for task := range p.tasks {
				task()
			}
		}()
	}

	return p
}

// Submit queues a task for execution. Blocks while every worker is busy.
func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

// Wait closes the queue and blocks until all submitted tasks have finished.
// The pool cannot be reused afterwards.
func (p *Pool) Wait() {
	close(p.tasks)
	p.wg.Wait()
}
