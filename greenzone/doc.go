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

// Package greenzone is a sparse cache of simulation snapshots, keyed by frame
// number. The snapshot stored for frame F is the state of the simulation
// immediately before the input record for frame F is executed.
//
// The snapshot for frame zero is supplied when the Greenzone is created and
// is never evicted. This means that Restore() always succeeds: if there is no
// snapshot closer to the requested frame then the frame zero snapshot is
// returned and the caller re-simulates from the beginning.
//
// Restore() is a floor lookup. It returns the snapshot with the largest frame
// number that is less than or equal to the requested frame. The cost of
// reaching an uncached frame is therefore bounded by the distance to the
// nearest preceding snapshot and not by the frame number itself.
//
// When the number of snapshots exceeds the capacity of the Greenzone, a
// snapshot is evicted. The most recently saved snapshots are protected from
// eviction. For the remaining snapshots, the one whose removal opens the
// smallest gap in coverage relative to its distance from the most recently
// saved frame is evicted. Over time this leaves dense coverage close to where
// the user is working and geometrically sparser coverage further away, which
// suits an editor where the user seeks back and forth more often than they
// play straight through.
package greenzone
