package a

import (
	"maps"
	"slices"
	"sort"

	"martianoff/freezie/freeze"
)

type point struct {
	X, Y int
}

type record struct {
	Tags  []string
	Attrs map[string]string
	Loc   *point
	Count int
}

func sliceWrites() {
	s := freeze.New([]int{3, 1, 2})
	s.Get()[0] = 9                    // want "write through Freeze.Get result"
	s.Get()[1]++                      // want "write through Freeze.Get result"
	(s.Get())[2] += 1                 // want "write through Freeze.Get result"
	s.Get()[1:][0] = 4                // want "write through Freeze.Get result"
	slices.Sort(s.Get())              // want "write through Freeze.Get result"
	sort.Ints(s.Get())                // want "write through Freeze.Get result"
	sort.Sort(sort.IntSlice(s.Get())) // want "write through Freeze.Get result"
	_ = append(s.Get()[:1], 7)        // want "write through Freeze.Get result"
	copy(s.Get(), []int{1})           // want "write through Freeze.Get result"
	clear(s.Get())                    // want "write through Freeze.Get result"

	ps := &s
	ps.Get()[0] = 1 // want "write through Freeze.Get result"
}

func shiftingWrites() {
	s := freeze.New([]int{3, 1, 2, 2})
	sort.Slice(s.Get(), func(i, j int) bool { return i < j })              // want "write through Freeze.Get result"
	sort.SliceStable(s.Get(), func(i, j int) bool { return i < j })        // want "write through Freeze.Get result"
	_ = slices.Delete(s.Get(), 0, 1)                                       // want "write through Freeze.Get result"
	_ = slices.DeleteFunc(s.Get(), func(v int) bool { return v > 2 })      // want "write through Freeze.Get result"
	_ = slices.Insert(s.Get()[:1], 0, 7)                                   // want "write through Freeze.Get result"
	_ = slices.Compact(s.Get())                                            // want "write through Freeze.Get result"
	_ = slices.CompactFunc(s.Get(), func(a, b int) bool { return a == b }) // want "write through Freeze.Get result"
	_ = slices.Replace(s.Get(), 0, 1, 9)                                   // want "write through Freeze.Get result"
}

func aliasWrites() {
	s := freeze.New([]int{3, 1, 2})
	v := s.Get()
	v[0] = 5 // want "write through Freeze.Get result"
	w := v
	slices.Sort(w) // want "write through Freeze.Get result"

	var m = freeze.New(map[string]int{}).Get()
	m["a"] = 1 // want "write through Freeze.Get result"

	r := freeze.New(record{Tags: []string{""}, Loc: &point{}})
	rc := r.Get()
	rc.Tags[0] = "y" // want "write through Freeze.Get result"
	rc.Loc.Y = 3     // want "write through Freeze.Get result"
	rc.Count = 2
	_ = rc
}

func aliasReads() {
	s := freeze.New([]int{3, 1, 2})
	v := s.Get()
	v = slices.Clone(v)
	v[0] = 1
	w := v
	w[1] = 2

	b := []byte(freeze.New("abc").Get())
	b[0] = 'x'

	first := s.Get()[0]
	first++
	_ = first
}

func mapWrites() {
	m := freeze.New(map[string]int{"a": 1})
	m.Get()["b"] = 2                                                 // want "write through Freeze.Get result"
	delete(m.Get(), "a")                                             // want "write through Freeze.Get result"
	maps.DeleteFunc(m.Get(), func(string, int) bool { return true }) // want "write through Freeze.Get result"
	maps.Copy(m.Get(), map[string]int{"c": 3})                       // want "write through Freeze.Get result"
}

func nestedWrites() {
	r := freeze.New(record{Tags: []string{""}, Attrs: map[string]string{}, Loc: &point{}})
	r.Get().Tags[0] = "x"    // want "write through Freeze.Get result"
	r.Get().Attrs["k"] = "v" // want "write through Freeze.Get result"
	r.Get().Loc.X = 1        // want "write through Freeze.Get result"

	p := freeze.New(&point{})
	p.Get().Y = 5      // want "write through Freeze.Get result"
	*p.Get() = point{} // want "write through Freeze.Get result"
}

func reads() {
	s := freeze.New([]int{3, 1, 2})
	_ = s.Get()[0]
	for _, v := range s.Get() {
		_ = v
	}
	c := slices.Clone(s.Get())
	slices.Sort(c)
	_ = slices.Sorted(slices.Values(s.Get()))

	local := []int{1}
	local[0] = 2
	copy(local, s.Get())

	owned := s.Defrost()
	owned[0] = 1

	maps.Copy(map[string]int{}, freeze.New(map[string]int{"a": 1}).Get())

	r := freeze.New(record{Count: 1})
	n := r.Get().Count
	n++
	_ = n
}
