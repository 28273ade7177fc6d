package reconcile

// counter is a multiset of card names that remembers first-seen order
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter(names []string) *counter {
	c := &counter{counts: make(map[string]int)}
	for _, name := range names {
		c.add(name, 1)
	}
	return c
}

func (c *counter) add(name string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name] += n
}

// intersect keeps the smaller count of each name, in c's order
func (c *counter) intersect(o *counter) *counter {
	out := &counter{counts: make(map[string]int)}
	for _, name := range c.order {
		out.add(name, min(c.counts[name], o.counts[name]))
	}
	return out
}

// subtract drops o's copies from c, in c's order
func (c *counter) subtract(o *counter) *counter {
	out := &counter{counts: make(map[string]int)}
	for _, name := range c.order {
		out.add(name, c.counts[name]-o.counts[name])
	}
	return out
}

// elements expands the multiset, copies of a name kept together
func (c *counter) elements() []string {
	var out []string
	for _, name := range c.order {
		for i := 0; i < c.counts[name]; i++ {
			out = append(out, name)
		}
	}
	return out
}

type orderedSet struct {
	order   []string
	members map[string]struct{}
}

func newOrderedSet(names []string) *orderedSet {
	s := &orderedSet{members: make(map[string]struct{})}
	for _, name := range names {
		if _, ok := s.members[name]; ok {
			continue
		}
		s.members[name] = struct{}{}
		s.order = append(s.order, name)
	}
	return s
}

func (s *orderedSet) has(name string) bool {
	_, ok := s.members[name]
	return ok
}

func (s *orderedSet) intersect(o *orderedSet) []string {
	var out []string
	for _, name := range s.order {
		if o.has(name) {
			out = append(out, name)
		}
	}
	return out
}

func (s *orderedSet) subtract(o *orderedSet) []string {
	var out []string
	for _, name := range s.order {
		if !o.has(name) {
			out = append(out, name)
		}
	}
	return out
}
