package regquery

import "github.com/tinyrange/sysregs/internal/sysreg"

// FindIDs looks up each identifier in cat. The result has one element per
// input, in input order; unknown identifiers have no Entries.
func FindIDs(cat *sysreg.Catalog, ids []sysreg.ID) []Result {
	ret := make([]Result, len(ids))
	for i, id := range ids {
		ret[i] = Result{ID: id, Entries: cat.LookupID(id)}
	}
	return ret
}

// NameResult is the outcome of looking up one register name.
type NameResult struct {
	Name    string
	Entries []sysreg.Entry
}

// FindNames looks up each name in cat, one result per input.
func FindNames(cat *sysreg.Catalog, names []string) []NameResult {
	ret := make([]NameResult, len(names))
	for i, name := range names {
		ret[i] = NameResult{Name: name, Entries: cat.LookupName(name)}
	}
	return ret
}
