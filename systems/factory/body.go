package factory

import (
	"sync/atomic"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var spawnSeq atomic.Int64

// attachBody gives an entity its exact bounds and a broadphase proxy in the
// world's space. The proxy is padded so resolv's integer cells never miss a
// sub-pixel contact; the exact test happens on Bounds.
func attachBody(w donburi.World, e *donburi.Entry, r gamemath.Rect, resolvTags ...string) {
	components.Bounds.SetValue(e, components.BoundsData{
		Rect: r,
		Seq:  int(spawnSeq.Add(1)),
	})

	proxy := r.Inflate(cfg.Physics.BroadphaseMargin)
	obj := resolv.NewObject(proxy.X, proxy.Y, proxy.W, proxy.H, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, proxy.W, proxy.H))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
