package render

import "github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"

// VertexStride is the number of float32 values uploaded per particle:
// x, y, mass.
const VertexStride = 3

// BufferBytes returns the exact GPU buffer size for n particles.
func BufferBytes(n int) int {
	return n * VertexStride * 4
}

// PackVertices flattens the particle slice into the interleaved
// (x, y, mass) layout the sprite shader consumes, in stable
// particle-index order. It is called only after a frame's physics step
// has fully completed, so the buffer never carries a half-updated
// frame.
func PackVertices(ps []engine.Particle) []float32 {
	buf := make([]float32, 0, len(ps)*VertexStride)
	for i := range ps {
		buf = append(buf,
			float32(ps[i].Pos.X),
			float32(ps[i].Pos.Y),
			float32(ps[i].Mass),
		)
	}
	return buf
}
