package driver

import "sync"

// bufferPool recycles per-particle scratch slices between force passes.
type bufferPool struct {
	pool sync.Pool
}

func (p *bufferPool) Get(n int) []float64 {
	if v, ok := p.pool.Get().(*[]float64); ok && cap(*v) >= n {
		buf := (*v)[:n]
		for i := range buf {
			buf[i] = 0
		}
		return buf
	}
	return make([]float64, n)
}

func (p *bufferPool) Put(buf []float64) {
	p.pool.Put(&buf)
}

var scratch bufferPool
