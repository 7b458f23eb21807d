package catalog

import (
	"sort"

	"lingotree/internal/domain/entities"
	"lingotree/pkg/dotted"
)

// Flatten turns a nested document into the flat path -> text map the
// store works with. Every string leaf yields one entry; nesting depth
// is arbitrary.
func Flatten(doc Document) map[string]string {
	flat := make(map[string]string)
	for key, value := range doc {
		flattenInto(key, value, flat)
	}
	return flat
}

func flattenInto(prefix string, value Value, flat map[string]string) {
	if value.IsStr {
		flat[prefix] = value.Str
		return
	}
	for key, inner := range value.Object {
		flattenInto(dotted.Join(prefix, key), inner, flat)
	}
}

// Unflatten rebuilds the nested document from every item whose target
// is set; unset items are omitted entirely, never emitted as null or
// empty. Keys are processed in ascending order so the result does not
// depend on input ordering.
func Unflatten(items []*entities.TranslationItem) Document {
	sorted := make([]*entities.TranslationItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	root := Document{}
	for _, item := range sorted {
		if !item.HasTarget() {
			continue
		}
		level := root.namespace(dotted.Parent(item.Key))
		level[dotted.Last(item.Key)] = Value{Str: *item.TargetText, IsStr: true}
	}
	return root
}

// namespace walks to the object at path, creating intermediate objects
// as needed. A string leaf on the way is replaced by an object.
func (d Document) namespace(path string) map[string]Value {
	level := map[string]Value(d)
	if path == "" {
		return level
	}
	for _, segment := range dotted.Split(path) {
		next, ok := level[segment]
		if !ok || next.Object == nil {
			next = Value{Object: make(map[string]Value)}
			level[segment] = next
		}
		level = next.Object
	}
	return level
}
