package dataset

import "strings"

// NamePredicate decides whether a column name belongs to a variable pool.
// Selection layers receive predicates rather than hard-wired name sets.
type NamePredicate func(name string) bool

// AllowList builds a case-insensitive membership predicate.
func AllowList(names ...string) NamePredicate {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[strings.ToLower(name)]
		return ok
	}
}

// Survey convention: independent variables are x1..x5 plus x_total,
// dependent variables y1..y5 plus y_total.
var (
	XVariables = AllowList("x1", "x2", "x3", "x4", "x5", "x_total")
	YVariables = AllowList("y1", "y2", "y3", "y4", "y5", "y_total")
)

// VariablePool filters the dataset's numeric columns through a predicate,
// preserving table order.
func (d *Dataset) VariablePool(pred NamePredicate) []string {
	var pool []string
	for i := range d.Columns {
		if d.Columns[i].Kind == KindNumeric && pred(d.Columns[i].Name) {
			pool = append(pool, d.Columns[i].Name)
		}
	}
	return pool
}
