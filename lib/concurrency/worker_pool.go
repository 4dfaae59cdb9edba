package concurrency

import (
	"sync"

	"github.com/smartcontainers/sc/lib/utils"
)

// WorkerPool runs tasks on a fixed number of goroutines and collects their
// errors.
type WorkerPool struct {
	tasks   chan func() error
	stopper *sync.Once
	stop    chan struct{}
	done    chan struct{}
	errs    *utils.MultiErrors
}

// NewWorkerPool starts a pool with the given number of workers.
func NewWorkerPool(workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	pool := &WorkerPool{
		tasks:   make(chan func() error),
		stopper: &sync.Once{},
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		errs:    utils.NewMultiErrors(),
	}
	pool.start(workers)
	return pool
}

func (pool *WorkerPool) start(workers int) {
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-pool.stop:
					return
				case task, more := <-pool.tasks:
					if !more {
						return
					}
					if err := task(); err != nil {
						pool.errs.Add(err)
					}
				}
			}
		}()
	}

	// Close done once every worker has returned.
	go func() {
		wg.Wait()
		close(pool.done)
	}()
}

// Do blocks until a worker accepts fn, or the pool has stopped. Tasks handed
// in after Stop may be dropped.
func (pool *WorkerPool) Do(fn func() error) {
	select {
	case <-pool.done:
	case pool.tasks <- fn:
	}
}

// Stop makes workers exit after their current task.
func (pool *WorkerPool) Stop() {
	pool.stopper.Do(func() {
		close(pool.stop)
	})
}

// Wait waits for accepted tasks to finish and returns their errors joined.
// Do must not be called after Wait.
func (pool *WorkerPool) Wait() error {
	close(pool.tasks)
	<-pool.done
	return pool.errs.Collect()
}
