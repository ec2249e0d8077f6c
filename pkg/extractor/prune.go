package extractor

// Prune removes every key of obj whose value is an object without keys,
// at any depth, and returns obj. A pass may empty an object whose parent
// was already inspected, so passes repeat until nothing is removed; the
// number of passes is bounded by the depth of the tree.
func Prune(obj *Object) *Object {
	if obj == nil {
		return nil
	}

	limit := depth(obj) + 1
	for i := 0; i < limit; i++ {
		if !prunePass(obj) {
			break
		}
	}

	return obj
}

func prunePass(obj *Object) (removed bool) {
	for _, key := range obj.Keys() {
		child, ok := obj.fields[key].(*Object)
		if !ok {
			continue
		}

		if child.Len() == 0 {
			obj.Delete(key)
			removed = true
			continue
		}

		if prunePass(child) {
			removed = true
		}
	}
	return
}

func depth(obj *Object) int {
	deepest := 0
	for _, v := range obj.fields {
		if child, ok := v.(*Object); ok {
			if d := depth(child); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}
