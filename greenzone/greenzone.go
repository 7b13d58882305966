// This file is part of Tasedit.
//
// Tasedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tasedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tasedit.  If not, see <https://www.gnu.org/licenses/>.

package greenzone

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/engine"
	"github.com/jetsetilly/tasedit/logger"
)

// Default values for the capacity of the Greenzone and for the number of
// recently saved snapshots that are protected from eviction.
const (
	DefaultCapacity = 1000
	DefaultRecent   = 60
)

// the smallest capacity allowed. one entry for frame zero and one other.
const minCapacity = 2

type entry struct {
	frame    int
	snapshot engine.Snapshot

	// the value of the save counter when the entry was last saved
	seq uint64
}

// Greenzone is a sparse mapping of frame number to engine.Snapshot.
type Greenzone struct {
	// sorted by frame number. the first entry is always frame zero
	entries []entry

	capacity int
	recent   int

	// incremented on every call to Save()
	seq uint64

	// the frame number of the most recent Save(). eviction scores are
	// calculated relative to this frame
	anchor int

	// total size of all snapshots
	size int
}

// NewGreenzone is the preferred method of initialisation for the Greenzone
// type. The initial snapshot is the state of the simulation before frame zero.
func NewGreenzone(initial engine.Snapshot, capacity int, recent int) *Greenzone {
	gz := &Greenzone{}
	gz.entries = append(gz.entries, entry{frame: 0, snapshot: initial.Clone()})
	gz.size = len(initial)
	gz.SetCapacity(capacity, recent)
	return gz
}

func (gz *Greenzone) String() string {
	s := gz.Summary()
	return fmt.Sprintf("%d/%d snapshots [%d - %d] %d bytes", s.Entries, s.Capacity, s.Earliest, s.Latest, s.Bytes)
}

// SetCapacity changes the maximum number of snapshots and the number of
// recently saved snapshots that are protected from eviction. Snapshots are
// evicted immediately if necessary.
func (gz *Greenzone) SetCapacity(capacity int, recent int) {
	gz.capacity = max(capacity, minCapacity)
	gz.recent = min(max(recent, 1), gz.capacity-1)
	if n := gz.evict(); n > 0 {
		logger.Logf(logger.Allow, "greenzone", "capacity reduced to %d: %d snapshots evicted", gz.capacity, n)
	}
}

// search returns the index of the entry for frame or the index at which it
// should be inserted.
func (gz *Greenzone) search(frame int) (int, bool) {
	return slices.BinarySearchFunc(gz.entries, frame, func(e entry, f int) int {
		return e.frame - f
	})
}

// Save stores the snapshot for the frame, replacing any snapshot that already
// exists for that frame. The Greenzone takes ownership of the snapshot.
func (gz *Greenzone) Save(frame int, snapshot engine.Snapshot) {
	if frame < 0 {
		panic(curated.Errorf("greenzone: cannot save negative frame (%d)", frame))
	}

	gz.seq++
	gz.anchor = frame

	i, ok := gz.search(frame)
	if ok {
		gz.size += len(snapshot) - len(gz.entries[i].snapshot)
		gz.entries[i].snapshot = snapshot
		gz.entries[i].seq = gz.seq
		return
	}

	gz.entries = slices.Insert(gz.entries, i, entry{frame: frame, snapshot: snapshot, seq: gz.seq})
	gz.size += len(snapshot)
	gz.evict()
}

// Restore returns the snapshot with the largest frame number that is less
// than or equal to the requested frame, along with that frame number. The
// returned snapshot is a copy and can be used freely by the caller.
func (gz *Greenzone) Restore(frame int) (int, engine.Snapshot) {
	i, ok := gz.search(frame)
	if !ok {
		// the frame zero entry always exists so i is never zero for a
		// non-negative frame
		i = max(i-1, 0)
	}
	e := gz.entries[i]
	return e.frame, e.snapshot.Clone()
}

// Invalidate removes every snapshot with a frame number strictly greater than
// the after argument. Returns the number of snapshots removed.
func (gz *Greenzone) Invalidate(after int) int {
	i := sort.Search(len(gz.entries), func(i int) bool {
		return gz.entries[i].frame > after
	})

	// frame zero is never removed
	i = max(i, 1)

	n := len(gz.entries) - i
	if n == 0 {
		return 0
	}

	for _, e := range gz.entries[i:] {
		gz.size -= len(e.snapshot)
	}
	clear(gz.entries[i:])
	gz.entries = gz.entries[:i]

	logger.Logf(logger.Allow, "greenzone", "%d snapshots invalidated after frame %d", n, after)

	return n
}

// Covers returns true if there is a snapshot for exactly that frame.
func (gz *Greenzone) Covers(frame int) bool {
	_, ok := gz.search(frame)
	return ok
}

// Frames returns the frame numbers of every snapshot in the Greenzone, in
// order.
func (gz *Greenzone) Frames() []int {
	f := make([]int, len(gz.entries))
	for i, e := range gz.entries {
		f[i] = e.frame
	}
	return f
}

// Summary of the current state of the Greenzone. Useful for GUIs.
type Summary struct {
	Entries  int
	Capacity int
	Earliest int
	Latest   int
	Bytes    int
}

// Summary returns a summary of the current state of the Greenzone.
func (gz *Greenzone) Summary() Summary {
	return Summary{
		Entries:  len(gz.entries),
		Capacity: gz.capacity,
		Earliest: gz.entries[0].frame,
		Latest:   gz.entries[len(gz.entries)-1].frame,
		Bytes:    gz.size,
	}
}

// evict entries until the number of entries is within capacity. returns the
// number of entries evicted.
func (gz *Greenzone) evict() int {
	excess := len(gz.entries) - gz.capacity
	if excess <= 0 {
		return 0
	}

	// entries with a sequence number of at least threshold are among the most
	// recently saved and are protected
	seqs := make([]uint64, len(gz.entries))
	for i, e := range gz.entries {
		seqs[i] = e.seq
	}
	slices.Sort(seqs)
	threshold := seqs[len(seqs)-gz.recent]

	for i := 0; i < excess; i++ {
		victim := -1
		best := math.Inf(1)

		for i := 1; i < len(gz.entries); i++ {
			e := gz.entries[i]
			if e.seq >= threshold {
				continue
			}

			prev := gz.entries[i-1].frame
			var next int
			if i < len(gz.entries)-1 {
				next = gz.entries[i+1].frame
			} else {
				next = e.frame + (e.frame - prev)
			}

			dist := e.frame - gz.anchor
			if dist < 0 {
				dist = -dist
			}

			score := float64(next-prev) / float64(dist+1)
			if score < best {
				best = score
				victim = i
			}
		}

		// every remaining entry is protected. this can only happen if the
		// recent value has been set incorrectly
		if victim == -1 {
			panic(curated.Errorf("greenzone: no snapshot available for eviction"))
		}

		gz.size -= len(gz.entries[victim].snapshot)
		gz.entries = slices.Delete(gz.entries, victim, victim+1)
	}

	return excess
}
