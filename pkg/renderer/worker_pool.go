package renderer

import (
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID  int
	Samples int
	Err     error
}

// WorkerPool fans tile tasks out to a fixed set of render workers and
// fans results back in over a channel
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with capacity for taskCount queued tasks
func NewWorkerPool(numWorkers, taskCount int) *WorkerPool {
	return &WorkerPool{
		taskQueue:   make(chan TileTask, taskCount),
		resultQueue: make(chan TileResult, taskCount),
		numWorkers:  numWorkers,
	}
}

// Start launches the workers. renderTile is invoked once per task; it must
// only write pixels inside the task's tile bounds.
func (wp *WorkerPool) Start(renderTile func(task TileTask) TileResult) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				wp.resultQueue <- renderTile(task)
			}
		}()
	}
}

// Submit queues a tile task
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Result blocks until a completed tile result is available
func (wp *WorkerPool) Result() TileResult {
	return <-wp.resultQueue
}

// Stop closes the task queue and waits for all workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
