package scheduler

import (
	"sort"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

type neighbor struct {
	room     *model.Classroom
	distance float64
	adjacent bool
}

// clusterResolver enumerates room cluster candidates for a seating demand.
// The room universe and the per-room neighbor lists are built once per run.
type clusterResolver struct {
	rooms     []*model.Classroom
	neighbors map[model.RoomID][]neighbor
}

func newClusterResolver(rooms []*model.Classroom, proximities []*model.Proximity) *clusterResolver {
	// Capacity descending keeps enumeration deterministic and tries the
	// fewest-rooms options first.
	sorted := make([]*model.Classroom, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity > sorted[j].Capacity
	})

	byID := make(map[model.RoomID]*model.Classroom, len(sorted))
	for _, r := range sorted {
		byID[r.ID] = r
	}

	// Proximity edges are undirected, normalize into both directions.
	neighbors := make(map[model.RoomID][]neighbor)
	for _, p := range proximities {
		a, b := byID[p.PrimaryRoom], byID[p.NearbyRoom]
		if a == nil || b == nil {
			continue
		}
		neighbors[a.ID] = append(neighbors[a.ID], neighbor{b, p.Distance, p.IsAdjacent})
		neighbors[b.ID] = append(neighbors[b.ID], neighbor{a, p.Distance, p.IsAdjacent})
	}
	for id := range neighbors {
		list := neighbors[id]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].adjacent != list[j].adjacent {
				return list[i].adjacent
			}
			return list[i].distance < list[j].distance
		})
	}

	return &clusterResolver{rooms: sorted, neighbors: neighbors}
}

func (cr *clusterResolver) eligible(r *model.Classroom, requirement string) bool {
	if requirement != "" {
		return r.Matches(requirement)
	}
	// Special rooms are kept out of general purpose scheduling so lab seats
	// are not wasted on ordinary exams.
	return !r.IsSpecial
}

// candidates returns room clusters able to seat the demand, most preferred
// first: single rooms, then proximity-grown clusters, then a last-resort
// accumulation of the biggest rooms regardless of proximity.
func (cr *clusterResolver) candidates(needed int, requirement string) [][]*model.Classroom {
	var base []*model.Classroom
	for _, r := range cr.rooms {
		if cr.eligible(r, requirement) {
			base = append(base, r)
		}
	}

	var out [][]*model.Classroom
	for _, r := range base {
		if r.Capacity >= needed {
			out = append(out, []*model.Classroom{r})
		}
	}

	for _, r := range base {
		cluster := []*model.Classroom{r}
		total := r.Capacity
		for _, n := range cr.neighbors[r.ID] {
			if !cr.eligible(n.room, requirement) {
				continue
			}
			cluster = append(cluster, n.room)
			total += n.room.Capacity
			if total >= needed {
				break
			}
		}
		if total >= needed && len(cluster) > 1 {
			out = append(out, cluster)
		}
	}

	var cluster []*model.Classroom
	total := 0
	for _, r := range base {
		cluster = append(cluster, r)
		total += r.Capacity
		if total >= needed {
			out = append(out, cluster)
			break
		}
	}
	return out
}
