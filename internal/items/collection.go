package items

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Items is a multiset of owned pickups, keyed by item with the number of
// copies collected. The logic never mutates an Items value it is given.
type Items map[Item]int

// New builds a multiset from a list of pickups, one copy per entry.
func New(list ...Item) Items {
	it := make(Items, len(list))
	for _, item := range list {
		it[item]++
	}
	return it
}

// Parse reads a comma separated list such as "Morph,Bomb,ETank*3".
func Parse(s string) (Items, error) {
	it := make(Items)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		count := 1
		name := field
		if idx := strings.Index(field, "*"); idx != -1 {
			n, err := strconv.Atoi(strings.TrimSpace(field[idx+1:]))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid count in %q", field)
			}
			count = n
			name = field[:idx]
		}

		item, err := ParseItem(name)
		if err != nil {
			return nil, err
		}
		it[item] += count
	}
	return it, nil
}

// With returns a copy of the multiset with extra copies of the given items.
func (it Items) With(list ...Item) Items {
	out := it.Clone()
	for _, item := range list {
		out[item]++
	}
	return out
}

// Without returns a copy of the multiset with every copy of item removed.
func (it Items) Without(item Item) Items {
	out := it.Clone()
	delete(out, item)
	return out
}

// Clone returns an independent copy.
func (it Items) Clone() Items {
	out := make(Items, len(it))
	for item, n := range it {
		out[item] = n
	}
	return out
}

// String renders the multiset in the format accepted by Parse.
func (it Items) String() string {
	names := make([]string, 0, len(it))
	for item, n := range it {
		switch {
		case n <= 0:
			continue
		case n == 1:
			names = append(names, string(item))
		default:
			names = append(names, fmt.Sprintf("%s*%d", item, n))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
