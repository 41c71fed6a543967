package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// WorkerPool. fixed number of goroutines applying one JobFunc to queued jobs.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker is done and closes the results channel, call it after Close.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

type indexed[T any] struct {
	i        int
	val      T
	panicked interface{}
}

// Map runs fn over jobs on numWorkers goroutines, results keep the order of jobs.
// a panic in fn is raised again on the calling goroutine once every job is done.
func Map[T any, G any](numWorkers int, jobs []T, fn func(T) G) []G {
	wp := NewWorkerPool[indexed[T], indexed[G]](numWorkers, len(jobs))
	wp.Start(func(job indexed[T]) (res indexed[G]) {
		defer func() {
			if r := recover(); r != nil {
				res = indexed[G]{i: job.i, panicked: r}
			}
		}()
		return indexed[G]{i: job.i, val: fn(job.val)}
	})
	for i, job := range jobs {
		wp.AddJob(indexed[T]{i: i, val: job})
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(jobs))
	var panicked interface{}
	for res := range wp.CollectResults() {
		if res.panicked != nil && panicked == nil {
			panicked = res.panicked
		}
		out[res.i] = res.val
	}
	if panicked != nil {
		panic(panicked)
	}
	return out
}
