package program

import "sort"

// A Set of variable names.
type Set map[string]struct{}

// Contains returns true when name is in the Set.
func (set Set) Contains(name string) bool {
	_, ok := set[name]
	return ok
}

// Len returns the number of names in the Set.
func (set Set) Len() int {
	return len(set)
}

// Sorted returns the names in lexical order.
func (set Set) Sorted() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariablesUsed returns every distinct variable name referenced by the
// Program.
func VariablesUsed(prog Program) Set {
	set := Set{}
	for _, inst := range prog.code {
		if inst, ok := inst.(InstVariable); ok {
			set[inst.Name] = struct{}{}
		}
	}
	return set
}
