package arranging

import "sort"

var _ sort.Interface = byName(nil)

// byName is a list of members that can be sorted by name.
//
// Implement sort.Interface
type byName []*Member

// Len returns the length of the list.
func (s byName) Len() int {
	return len(s)
}

// Swap swaps the elements with indexes i and j.
func (s byName) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Less compares names byte-wise, which is the ordinal order of the names.
func (s byName) Less(i, j int) bool {
	return s[i].Name < s[j].Name
}

// SortMethods returns a new slice with the members sorted by name, setters
// moved right after their getter and overloads made contiguous. The input is
// not modified. Sorting an already sorted list returns the same order.
func SortMethods(members []*Member) ([]*Member, error) {
	sorted := make([]*Member, len(members))
	copy(sorted, members)

	// overloads keep their relative order
	sort.Stable(byName(sorted))

	sorted, err := groupAccessors(sorted)
	if err != nil {
		return nil, err
	}
	return groupOverloads(sorted), nil
}

// groupOverloads moves every member sharing a name with a previous member
// right after that previous member.
func groupOverloads(members []*Member) []*Member {
	byNames := make(map[string][]*Member)
	var names []string
	for _, m := range members {
		if _, ok := byNames[m.Name]; !ok {
			names = append(names, m.Name)
		}
		byNames[m.Name] = append(byNames[m.Name], m)
	}

	for _, name := range names {
		group := byNames[name]
		for i := 1; i < len(group); i++ {
			prev := indexOf(members, group[i-1])
			idx := indexOf(members, group[i])
			if idx-prev == 1 {
				continue
			}
			// idx > prev always holds: the group is in list order and earlier
			// moves only pull members forward, right after their predecessor.
			members = remove(members, idx)
			members = insert(members, prev+1, group[i])
		}
	}
	return members
}

func indexOf(members []*Member, m *Member) int {
	for i, candidate := range members {
		if candidate == m {
			return i
		}
	}
	return -1
}

func remove(members []*Member, i int) []*Member {
	return append(members[:i], members[i+1:]...)
}

func insert(members []*Member, i int, m *Member) []*Member {
	members = append(members, nil)
	copy(members[i+1:], members[i:])
	members[i] = m
	return members
}
