package game

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

type EntityID int

type EntityKind int

const (
	KindCollectibleLog EntityKind = iota
	KindFirepitHitbox
	// KindFirepitStone only carries the hover highlight; it is never hit.
	KindFirepitStone
)

func (k EntityKind) String() string {
	switch k {
	case KindCollectibleLog:
		return "collectible_log"
	case KindFirepitHitbox:
		return "firepit_hitbox"
	case KindFirepitStone:
		return "firepit_stone"
	default:
		return "unknown"
	}
}

// Pickable reports whether rays are tested against this kind.
func (k EntityKind) Pickable() bool {
	return k == KindCollectibleLog || k == KindFirepitHitbox
}

type Entity struct {
	ID       EntityID
	Kind     EntityKind
	Position mgl64.Vec3
	Bounds   AABB
	// Yaw and Tilt orient the mesh for rendering only.
	Yaw  float64
	Tilt float64
	Glow bool
}

// Registry is the set of interactive entities in the world, indexed by id
// and by kind.
type Registry struct {
	next   EntityID
	byID   map[EntityID]*Entity
	byKind map[EntityKind][]EntityID
}

func NewRegistry() *Registry {
	return &Registry{
		next:   1,
		byID:   map[EntityID]*Entity{},
		byKind: map[EntityKind][]EntityID{},
	}
}

func (r *Registry) Add(e Entity) EntityID {
	e.ID = r.next
	r.next++
	r.byID[e.ID] = &e
	r.byKind[e.Kind] = append(r.byKind[e.Kind], e.ID)
	return e.ID
}

func (r *Registry) Get(id EntityID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

func (r *Registry) Remove(id EntityID) bool {
	e, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	ids := r.byKind[e.Kind]
	for i, other := range ids {
		if other == id {
			r.byKind[e.Kind] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

// OfKind returns the live entities of a kind in insertion order.
func (r *Registry) OfKind(kind EntityKind) []*Entity {
	ids := r.byKind[kind]
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Registry) Len() int { return len(r.byID) }

// All returns every entity ordered by id.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

const (
	stoneCount      = 12
	stoneRingRadius = 1.5
	stoneHeight     = 0.15
	stoneSize       = 0.3
	groundLogY      = 0.15
)

var (
	groundLogSpots = []mgl64.Vec3{
		{-3, groundLogY, 3},
		{3, groundLogY, 3},
		{-3, groundLogY, -3},
	}
	groundLogHalf = mgl64.Vec3{0.6, 0.15, 0.15}
	firepitBounds = AABB{Min: mgl64.Vec3{-1.8, 0, -1.8}, Max: mgl64.Vec3{1.8, 0.6, 1.8}}
)

// populateWorld registers the firepit, its stone ring and the collectible logs.
// Stone orientation comes from r so the ring looks the same for a given seed.
func populateWorld(reg *Registry, r Rand) {
	reg.Add(Entity{Kind: KindFirepitHitbox, Bounds: firepitBounds})

	for i := 0; i < stoneCount; i++ {
		angle := float64(i) / stoneCount * 2 * math.Pi
		pos := mgl64.Vec3{math.Cos(angle) * stoneRingRadius, stoneHeight, math.Sin(angle) * stoneRingRadius}
		reg.Add(Entity{
			Kind:     KindFirepitStone,
			Position: pos,
			Bounds:   BoxAround(pos, mgl64.Vec3{stoneSize, stoneSize, stoneSize}),
			Yaw:      r.Float64() * 2 * math.Pi,
			Tilt:     r.Float64() * 0.5,
		})
	}

	for _, pos := range groundLogSpots {
		reg.Add(Entity{
			Kind:     KindCollectibleLog,
			Position: pos,
			Bounds:   BoxAround(pos, groundLogHalf),
			Tilt:     math.Pi / 2,
		})
	}
}
