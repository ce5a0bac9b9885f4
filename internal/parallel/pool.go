// Package parallel runs per-row raster work on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines executing conversion tasks.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty, so bands that straddle expensive regions (the poles under a
// Lanczos filter, say) do not leave the rest of the pool idle.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// submitMu is held for reading while tasks are queued and for writing
	// while Close stops the workers, so no task is queued after done closes.
	submitMu sync.RWMutex
}

// NewWorkerPool creates and starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			run(task)
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case task := <-own:
				run(task)
			}
		}
	}
}

func run(task func()) {
	if task != nil {
		task()
	}
}

// drain executes everything left in queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			run(task)
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin and waits for all of them.
// On a closed pool the tasks run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	p.submitMu.RLock()
	if !p.running.Load() {
		p.submitMu.RUnlock()
		for _, task := range tasks {
			run(task)
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	for i, task := range tasks {
		p.queues[i%p.workers] <- func() {
			defer pending.Done()
			run(task)
		}
	}
	p.submitMu.RUnlock()

	pending.Wait()
}

// Close stops the pool after queued work has finished. It waits for any
// ExecuteAll that is still queueing tasks.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.submitMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submitMu.Unlock()
		return
	}
	close(p.done)
	p.submitMu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
