package md2conf

import "sync"

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one service is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent transforms; the pipeline is CPU-bound and
	// proportional to document size, so more than this buys nothing.
	MaxPoolSize = 32
)

// ServicePool manages Service instances for transforming documents in
// parallel. Each Convert allocates its own placeholder vault and counter,
// so pooled services never leak tokens across documents. Services are
// created lazily on first acquire.
type ServicePool struct {
	size    int
	opts    []Option
	sem     chan *Service
	mu      sync.Mutex
	created int
}

// NewServicePool creates a pool with capacity for n services, each built
// with opts.
func NewServicePool(n int, opts ...Option) *ServicePool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	if n > MaxPoolSize {
		n = MaxPoolSize
	}
	return &ServicePool{
		size: n,
		opts: opts,
		sem:  make(chan *Service, n),
	}
}

// Size reports the pool capacity after clamping.
func (p *ServicePool) Size() int {
	return p.size
}

// Acquire gets a service from the pool, creating one if capacity allows.
// Blocks while all services are in use.
func (p *ServicePool) Acquire() *Service {
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return New(p.opts...)
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc *Service) {
	if svc == nil {
		return
	}
	select {
	case p.sem <- svc:
	default:
		// More releases than acquires; drop the extra service.
	}
}
