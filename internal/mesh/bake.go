package mesh

import (
	"context"
	"sync"

	"tilecollider/internal/profiling"
)

// Baker turns mesh geometry into cooked physics data. Bake must not return
// before the cooked data is attached: collider geometry has to be consistent
// before the caller's next frame.
type Baker interface {
	Bake(m *Mesh)
}

// SyncBaker cooks on the calling goroutine.
type SyncBaker struct{}

func (SyncBaker) Bake(m *Mesh) {
	defer profiling.Track("mesh.bake")()
	m.cooked = cook(m)
	profiling.Count("mesh.bakes")
}

// bakeJob carries one mesh to a worker together with its completion signal.
type bakeJob struct {
	mesh *Mesh
	done chan struct{}
}

// BakePool offloads mesh cooking to background workers. Bake still blocks
// until the job finishes, so callers get the same consistency guarantee as
// with SyncBaker; the pool only buys overlap between independent builders.
type BakePool struct {
	jobs    chan bakeJob
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	workers int
}

// NewBakePool starts a pool with the given number of workers.
func NewBakePool(workers int) *BakePool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &BakePool{
		jobs:    make(chan bakeJob, workers*4),
		ctx:     ctx,
		cancel:  cancel,
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *BakePool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			job.mesh.cooked = cook(job.mesh)
			profiling.Count("mesh.bakes")
			close(job.done)
		case <-p.ctx.Done():
			// Drain queued jobs so no Bake caller is left waiting.
			for {
				select {
				case job := <-p.jobs:
					job.mesh.cooked = cook(job.mesh)
					profiling.Count("mesh.bakes")
					close(job.done)
				default:
					return
				}
			}
		}
	}
}

// Bake submits the mesh to a worker and waits for the cook to complete.
// After Close the pool cooks inline, so callers are never left with a stale
// collider.
func (p *BakePool) Bake(m *Mesh) {
	defer profiling.Track("mesh.bake")()

	job := bakeJob{mesh: m, done: make(chan struct{})}
	select {
	case p.jobs <- job:
		<-job.done
	case <-p.ctx.Done():
		m.cooked = cook(m)
		profiling.Count("mesh.bakes")
	}
}

// Close stops the workers. Jobs still in the queue are drained and cooked
// before the workers exit.
func (p *BakePool) Close() {
	p.cancel()
	p.wg.Wait()
}
