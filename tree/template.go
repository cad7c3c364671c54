package tree

// Template bundles a root expression with a name, a documentation
// string and per-variable display metadata, keyed by node identity.
// It is the unit of serialization. A Template does not own its root:
// the caller keeps the reference and releases it as usual.
type Template struct {
	Root Tree
	Name string
	Doc  string

	VarNames map[ID]string
	VarDocs  map[ID]string
}

// NewTemplate wraps root in an unnamed, undocumented template.
func NewTemplate(root Tree) *Template {
	return &Template{
		Root:     root,
		VarNames: make(map[ID]string),
		VarDocs:  make(map[ID]string),
	}
}

// SetVar records a display name and documentation string for the
// variable node v. Serialization emits empty strings for variables
// with no recorded metadata.
func (t *Template) SetVar(v Tree, name, doc string) {
	if t.VarNames == nil {
		t.VarNames = make(map[ID]string)
	}
	if t.VarDocs == nil {
		t.VarDocs = make(map[ID]string)
	}
	t.VarNames[v.ID()] = name
	t.VarDocs[v.ID()] = doc
}
