package normalize

import (
	"sort"
)

// facultyDepartments accumulates, across all bulletin-sourced modules, the
// set of departments seen under each faculty. Append-only until finalize.
type facultyDepartments map[string]map[string]struct{}

func newFacultyDepartments() facultyDepartments {
	return make(facultyDepartments)
}

func (fd facultyDepartments) add(faculty, department string) {
	departments, ok := fd[faculty]
	if !ok {
		departments = make(map[string]struct{})
		fd[faculty] = departments
	}
	departments[department] = struct{}{}
}

// finalize converts each faculty's department set into a sorted,
// deduplicated list. Map keys serialize in sorted order.
func (fd facultyDepartments) finalize() map[string][]string {
	out := make(map[string][]string, len(fd))
	for faculty, departments := range fd {
		list := make([]string, 0, len(departments))
		for department := range departments {
			list = append(list, department)
		}
		sort.Strings(list)
		out[faculty] = list
	}
	return out
}

// venueSet accumulates the cleaned venue strings seen across all modules.
type venueSet map[string]struct{}

func newVenueSet() venueSet {
	return make(venueSet)
}

func (vs venueSet) add(venue string) {
	vs[venue] = struct{}{}
}

// finalize converts the set to a sorted list, minus the empty string.
func (vs venueSet) finalize() []string {
	delete(vs, "")
	out := make([]string, 0, len(vs))
	for venue := range vs {
		out = append(out, venue)
	}
	sort.Strings(out)
	return out
}

// orderedSet is a string set that remembers insertion order, used for the
// per-lesson-type period buckets so repeated runs emit identical output.
type orderedSet struct {
	seen map[string]struct{}
	keys []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(key string) {
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.keys = append(s.keys, key)
}

func (s *orderedSet) len() int {
	return len(s.keys)
}

func (s *orderedSet) values() []string {
	return s.keys
}
