package application

import (
	"sort"

	"lingotree/internal/domain/entities"
	"lingotree/pkg/dotted"
)

// BuildForest builds the navigation forest from the store's items:
// one node per path segment, siblings in ascending key order. The
// result only depends on the item set, never on input order.
//
// Sibling lookup is a linear scan; fan-out is small in practice and
// the scan preserves insertion order, which a map would not.
func BuildForest(items []*entities.TranslationItem) []*entities.TreeNode {
	sorted := make([]*entities.TranslationItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var roots []*entities.TreeNode
	for _, item := range sorted {
		level := &roots
		path := ""
		segments := dotted.Split(item.Key)
		for i, segment := range segments {
			path = dotted.Join(path, segment)

			var node *entities.TreeNode
			for _, sibling := range *level {
				if sibling.Segment == segment {
					node = sibling
					break
				}
			}
			if node == nil {
				node = &entities.TreeNode{
					Segment:  segment,
					FullPath: path,
				}
				*level = append(*level, node)
			}

			if i == len(segments)-1 {
				// A key that is also a prefix of other keys lands its
				// item on a node that grows children: last-processed-wins.
				node.Key = item.Key
			}
			level = &node.Children
		}
	}
	return roots
}

// PropagateCompletion recomputes FullyTranslated bottom-up: a leaf is
// done when its item carries a non-empty target, an internal node when
// all its children are done. Returns whether every node in the slice
// is done. Must run after every target mutation; a full walk is cheap
// at catalog scale.
func PropagateCompletion(nodes []*entities.TreeNode, store *Store) bool {
	all := true
	for _, node := range nodes {
		if node.IsLeaf() {
			node.FullyTranslated = false
			if item, ok := store.Get(node.Key); ok {
				node.FullyTranslated = item.IsTranslated()
			}
		} else {
			node.FullyTranslated = PropagateCompletion(node.Children, store)
		}
		if !node.FullyTranslated {
			all = false
		}
	}
	return all
}

// VisibleRows projects the forest to the ordered list of rows shown:
// pre-order, recursing into a subtree only when its node is expanded.
func VisibleRows(nodes []*entities.TreeNode) []entities.Row {
	var rows []entities.Row
	appendVisible(nodes, 0, &rows)
	return rows
}

func appendVisible(nodes []*entities.TreeNode, depth int, rows *[]entities.Row) {
	for _, node := range nodes {
		*rows = append(*rows, entities.Row{Path: node.FullPath, Depth: depth})
		if node.Expanded {
			appendVisible(node.Children, depth+1, rows)
		}
	}
}

// FindNode resolves a full path to its node, or nil.
func FindNode(nodes []*entities.TreeNode, path string) *entities.TreeNode {
	segments := dotted.Split(path)
	level := nodes
	var found *entities.TreeNode
	for _, segment := range segments {
		found = nil
		for _, node := range level {
			if node.Segment == segment {
				found = node
				break
			}
		}
		if found == nil {
			return nil
		}
		level = found.Children
	}
	return found
}
