// Package batch runs the synchronous, single-threaded meshopt core over
// many independent meshes concurrently — useful for building meshlets or
// cluster partitions across every node of a LOD hierarchy without making
// any individual meshopt call itself concurrent (meshopt's §5 contract is
// unchanged; only the scheduling here is parallel).
//
// The worker-pool-over-a-job-channel shape is adapted from
// go-voxels/pkg/game's ChunkManager: a buffered job queue and a fixed pool
// of workers that exit once the queue is closed and drained.
package batch

import "sync"

// Job is one unit of work: Run takes no arguments and returns a result
// (or an error); ID tags the matching Result. Run must not itself spawn goroutines that
// outlive the call — Pipeline already runs it concurrently with other
// jobs.
type Job[T any] struct {
	ID  int
	Run func() (T, error)
}

// Result pairs a Job's ID with its outcome.
type Result[T any] struct {
	ID    int
	Value T
	Err   error
}

// Pipeline runs jobs across a fixed pool of workers and returns their
// results in arbitrary completion order. workers <= 0 defaults to 1.
func Pipeline[T any](jobs []Job[T], workers int) []Result[T] {
	if workers <= 0 {
		workers = 1
	}
	if len(jobs) == 0 {
		return nil
	}

	jobCh := make(chan Job[T], len(jobs))
	resultCh := make(chan Result[T], len(jobs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range jobCh {
				v, err := job.Run()
				resultCh <- Result[T]{ID: job.ID, Value: v, Err: err}
			}
		}()
	}

	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]Result[T], 0, len(jobs))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}
