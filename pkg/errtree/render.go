package errtree

type RenderOptions struct {
	// Compact suppresses the guide-only separator lines between sibling
	// subtrees
	Compact bool
	// AllPaths renders a multi-parented record under every qualifying
	// parent instead of only the first declared one
	AllPaths bool
}

type RenderOption func(o *RenderOptions)

func Compact(v bool) RenderOption {
	return func(o *RenderOptions) {
		o.Compact = v
	}
}

func AllPaths(v bool) RenderOption {
	return func(o *RenderOptions) {
		o.AllPaths = v
	}
}

func NewRenderOptions(opts ...RenderOption) *RenderOptions {
	o := &RenderOptions{}
	for _, v := range opts {
		v(o)
	}
	return o
}

// Render returns the indented tree for the registry, one entry per line.
// The first line is always the root label; an empty registry yields just
// that line. Rendering the same registry with the same options twice gives
// byte-identical output
func Render(r *Registry, opts ...RenderOption) []string {
	o := NewRenderOptions(opts...)
	children := buildChildren(r, o.AllPaths)

	lines := []string{r.root.Name}
	kids := children[r.root]
	for i, kid := range kids {
		// a bare guide before every root level child breaks up the
		// top level groups
		if !o.Compact {
			lines = append(lines, "|")
		}
		last := i == len(kids)-1
		lines = append(lines, connector(last)+label(kid))
		lines = renderSubtree(lines, kid, children, childIndent("", last), o.Compact)
	}
	return lines
}

// renderSubtree emits all descendants of node under the given indent
func renderSubtree(lines []string, node *TypeRecord, children childMap, indent string, compact bool) []string {
	kids := children[node]
	for i, kid := range kids {
		// separate a sibling from its predecessor's subtree with a
		// guide-only line
		if !compact && i > 0 && len(children[kids[i-1]]) > 0 {
			lines = append(lines, indent+"|")
		}
		last := i == len(kids)-1
		lines = append(lines, indent+connector(last)+label(kid))
		if len(children[kid]) > 0 {
			lines = renderSubtree(lines, kid, children, childIndent(indent, last), compact)
		}
	}
	return lines
}

func connector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

// label suffixes multi-parented records with a marker regardless of the
// placement mode
func label(rec *TypeRecord) string {
	if rec.Multiparented() {
		return rec.Name + " *"
	}
	return rec.Name
}

// childIndent extends the indent for a child's descendants: a vertical
// guide while the child still has siblings below it, blanks otherwise
func childIndent(indent string, last bool) string {
	if last {
		return indent + "    "
	}
	return indent + "│   "
}
