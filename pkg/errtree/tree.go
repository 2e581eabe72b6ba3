package errtree

import (
	"sort"
	"strings"
)

// childMap maps each node (root or record) to its ordered children
type childMap map[*TypeRecord][]*TypeRecord

// primaryParent is the single parent a record is placed under in default
// mode: the first qualifying parent in the record's declared order
func primaryParent(root *TypeRecord, rec *TypeRecord) *TypeRecord {
	if len(rec.Parents) == 0 {
		return root
	}
	return rec.Parents[0]
}

// buildChildren inverts the parent relationships in the registry into a
// children map. In all-paths mode a record additionally appears under every
// parent beyond the primary one. The parent graph cannot cycle since the
// compiler rejects embedding cycles, so no guard is needed here
func buildChildren(r *Registry, allPaths bool) childMap {
	children := make(childMap)
	for _, rec := range r.records {
		p := primaryParent(r.root, rec)
		children[p] = append(children[p], rec)
	}

	if allPaths {
		for _, rec := range r.records {
			if !rec.Multiparented() {
				continue
			}
			for _, p := range rec.Parents[1:] {
				children[p] = append(children[p], rec)
			}
		}
	}

	sortChildren(children)
	return children
}

// sortChildren orders every sibling group case-insensitively by display
// name. Names equal under lowering fall back to byte order so the result is
// still total
func sortChildren(children childMap) {
	for _, kids := range children {
		sort.SliceStable(kids, func(i, j int) bool {
			a, b := strings.ToLower(kids[i].Name), strings.ToLower(kids[j].Name)
			if a == b {
				return kids[i].Name < kids[j].Name
			}
			return a < b
		})
	}
}
