package entities

// TreeNode is one node of the navigation forest built from the flat
// catalog: one node per path segment. Leaves do not cache translation
// text; they hold the store key and read through the store, so edits
// have a single write site.
type TreeNode struct {
	Segment  string
	FullPath string
	// Key is set only on nodes that correspond to an actual catalog
	// entry. A key that is also a namespace prefix of other keys puts
	// a Key on a node with children (last-processed-wins).
	Key             string
	Children        []*TreeNode
	Expanded        bool
	FullyTranslated bool
}

// IsLeaf reports whether the node has no children.
func (n *TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// HasItem reports whether the node corresponds to a catalog entry.
func (n *TreeNode) HasItem() bool {
	return n.Key != ""
}

// Row is one line of the visible projection of the forest.
type Row struct {
	Path  string
	Depth int
}
