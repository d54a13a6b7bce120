package render

import (
	"image"
	"sync/atomic"
)

// Progress counts rendered pixels across workers. A nil *Progress is valid
// and counts nothing.
type Progress struct {
	total int64
	count atomic.Int64
}

func NewProgress(bounds image.Rectangle) *Progress {
	return &Progress{total: int64(bounds.Dx()) * int64(bounds.Dy())}
}

func (p *Progress) add(n int) {
	if p == nil {
		return
	}
	p.count.Add(int64(n))
}

// Fraction reports completed work in [0, 1].
func (p *Progress) Fraction() float64 {
	if p == nil || p.total == 0 {
		return 0
	}
	f := float64(p.count.Load()) / float64(p.total)
	if f > 1 {
		return 1
	}
	return f
}
