package physics

import (
	"math"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
)

// minSeparation guards the degenerate case of coincident centers. A
// pair closer than this skips its collision for the frame rather than
// dividing by a near-zero distance.
const minSeparation = 1e-4

// ResolveCollisions detects every overlapping unordered pair and
// applies an elastic impulse along the contact normal plus a positional
// correction removing the penetration.
//
// Pairs are processed once, in ascending (i, j<i...n) index order. The
// order is part of the contract: positional corrections compound
// sequentially, so a particle overlapping several neighbours in the
// same frame sees already-corrected positions for earlier pairs.
// Simultaneous multi-body contact would need sub-stepping or a
// constraint solver, which this resolver deliberately does not do.
func ResolveCollisions(ps []engine.Particle, radiusScale float64) {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			diff := ps[j].Pos.Sub(ps[i].Pos)
			distSq := diff.Dot(diff)
			rSum := ps[i].Radius(radiusScale) + ps[j].Radius(radiusScale)

			if distSq >= rSum*rSum {
				continue
			}

			dist := math.Sqrt(distSq)
			if dist < minSeparation {
				continue
			}

			n := diff.Scale(1 / dist)

			// 1D elastic collision along the contact normal; the
			// tangential velocity component is left untouched.
			v1 := ps[i].Vel.Dot(n)
			v2 := ps[j].Vel.Dot(n)
			m1 := ps[i].Mass
			m2 := ps[j].Mass

			v1New := (v1*(m1-m2) + 2*m2*v2) / (m1 + m2)
			v2New := (v2*(m2-m1) + 2*m1*v1) / (m1 + m2)

			ps[i].Vel = ps[i].Vel.Add(n.Scale(v1New - v1))
			ps[j].Vel = ps[j].Vel.Add(n.Scale(v2New - v2))

			penetration := rSum - dist
			correction := n.Scale(penetration / 2)
			ps[i].Pos = ps[i].Pos.Sub(correction)
			ps[j].Pos = ps[j].Pos.Add(correction)
		}
	}
}
