package component

// FindByName returns the first component matching name in a pre-order
// depth-first walk from root. Names are unique by convention only, so
// callers needing a specific duplicate should compare paths instead.
func FindByName(root *Component, name string) (*Component, bool) {
	if root == nil {
		return nil, false
	}
	if root.name == name {
		return root, true
	}
	for _, child := range root.children {
		if found, ok := FindByName(child, name); ok {
			return found, true
		}
	}
	return nil, false
}

// Walk visits root and every descendant pre-order, passing each component
// and its depth below root to fn.
func Walk(root *Component, fn func(c *Component, depth int)) {
	if root == nil {
		return
	}
	walk(root, 0, fn)
}

func walk(c *Component, depth int, fn func(c *Component, depth int)) {
	fn(c, depth)
	for _, child := range c.children {
		walk(child, depth+1, fn)
	}
}
