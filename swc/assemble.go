package swc

// assembleTask is one unit of work on the explicit assembler stack: the
// id to assemble from, the section its caller just emitted (or nil for a
// root), and the point/diameter that section ended on. Trading recursion
// for an explicit stack keeps stack depth proportional to tree depth
// rather than sample count, even before chain collapsing.
type assembleTask struct {
	id            SampleID
	parentDeclID  SampleID
	parentHandle  SectionHandle // nil when isRoot
	startPoint    Point
	startDiameter float64
	isRoot        bool
}

// assemble walks out from the soma and orphan roots, collapsing maximal
// same-type unbranched chains into sections and inserting duplicate fork
// points at section starts.
func assemble[P any](b Builder[P], idx *sampleIndex, soma somaShape, warn WarningSink) error {
	// Collect every top-level task a recursive form of this walk would
	// start, in the forward order root_samples and their children were
	// declared. The stack below is LIFO, so these
	// are pushed in reverse once collected: that still lets each task's
	// own subtree drain completely (its children land on top of the
	// stack) before the next initial task is reached, matching the
	// recursive call order exactly.
	var initial []assembleTask
	for _, root := range idx.rootSamples {
		children := idx.childrenOf[root.ID]
		if len(children) == 0 {
			continue
		}

		if soma.kind == SomaNeuromorphoThreePointCylinders && root.Type == Soma && root.ID != 1 {
			warn.Warn(Warning{Kind: WrongRootPoint, SampleID: root.ID, Line: root.Line})
		}

		if root.Type == Soma {
			for _, childID := range children {
				child := idx.byID[childID]
				if child.Type == Soma {
					continue
				}
				initial = append(initial, assembleTask{
					id:            childID,
					parentDeclID:  root.ID,
					startPoint:    soma.points[0],
					startDiameter: soma.diameters[0],
					isRoot:        true,
				})
			}
			continue
		}

		// The root itself is a neurite whose parent is no-parent: the
		// entire root-rooted subtree is handled from this single call.
		initial = append(initial, assembleTask{
			id:            root.ID,
			parentDeclID:  NoParent,
			startPoint:    root.Point,
			startDiameter: root.Diameter,
			isRoot:        true,
		})
	}

	stack := make([]assembleTask, 0, len(initial))
	for i := len(initial) - 1; i >= 0; i-- {
		stack = append(stack, initial[i])
	}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var points []Point
		var diameters []float64

		id := task.id
		cur := idx.byID[id]

		// The duplicate fork point carries geometric continuity from the
		// predecessor (parent section, or the soma for a section rooted
		// directly on it) into this section's head. A genuinely
		// standalone neurite root is seeded with its own point as
		// startPoint, so this is naturally a no-op for it.
		if cur.Point != task.startPoint {
			points = append(points, task.startPoint)
			diameters = append(diameters, task.startDiameter)
		}

		for {
			children := idx.childrenOf[id]
			if len(children) != 1 {
				break
			}
			next := idx.byID[children[0]]
			if next.Type != cur.Type {
				break
			}
			points = append(points, cur.Point)
			diameters = append(diameters, cur.Diameter)
			id = next.ID
			cur = next
		}
		points = append(points, cur.Point)
		diameters = append(diameters, cur.Diameter)

		var handle SectionHandle
		if task.isRoot {
			handle = b.AppendRootSection(points, diameters, cur.Type)
		} else {
			handle = task.parentHandle.AppendSection(points, diameters, cur.Type)
		}

		children := idx.childrenOf[id]
		switch len(children) {
		case 0:
			// nothing further on this branch
		case 1:
			stack = append(stack, assembleTask{
				id:            children[0],
				parentDeclID:  id,
				parentHandle:  handle,
				startPoint:    cur.Point,
				startDiameter: cur.Diameter,
				isRoot:        false,
			})
		default:
			// Push in reverse so the first child in source order is
			// popped (and its whole subtree drained) first, matching
			// the depth-first order the recursive form of this
			// algorithm would produce.
			for i := len(children) - 1; i >= 0; i-- {
				childID := children[i]
				stack = append(stack, assembleTask{
					id:            childID,
					parentDeclID:  id,
					parentHandle:  handle,
					startPoint:    cur.Point,
					startDiameter: cur.Diameter,
					isRoot:        false,
				})
			}
		}
	}
	return nil
}
