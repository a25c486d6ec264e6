package blueberry

import (
	"fmt"
	"math"
)

// TransformID indexes a node in a TransformTree.
type TransformID int32

// NoTransform is the parent of root nodes.
const NoTransform TransformID = -1

// Transform is a local position, clockwise rotation in degrees, and scale.
type Transform struct {
	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64
}

// IdentityTransform is the transform at the origin with unit scale.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1}

type transformNode struct {
	local  Transform
	parent TransformID
	live   bool
}

// TransformTree is an arena of transforms linked by parent index. Nodes are
// addressed by TransformID; removed slots are reused.
type TransformTree struct {
	nodes []transformNode
	free  []TransformID
}

// NewTransformTree returns an empty tree.
func NewTransformTree() *TransformTree {
	return &TransformTree{}
}

// Add inserts a node with the given local transform under parent
// (NoTransform for a root).
func (t *TransformTree) Add(local Transform, parent TransformID) (TransformID, error) {
	if parent != NoTransform && !t.valid(parent) {
		return NoTransform, fmt.Errorf("blueberry: transform parent %d of %d: %w", parent, len(t.nodes), ErrIndexOutOfRange)
	}
	n := transformNode{local: local, parent: parent, live: true}
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id, nil
	}
	t.nodes = append(t.nodes, n)
	return TransformID(len(t.nodes) - 1), nil
}

// Remove frees id. Its children become roots.
func (t *TransformTree) Remove(id TransformID) {
	if !t.valid(id) {
		return
	}
	for i := range t.nodes {
		if t.nodes[i].live && t.nodes[i].parent == id {
			t.nodes[i].parent = NoTransform
		}
	}
	t.nodes[id] = transformNode{parent: NoTransform}
	t.free = append(t.free, id)
}

// Len returns the number of live nodes.
func (t *TransformTree) Len() int { return len(t.nodes) - len(t.free) }

func (t *TransformTree) valid(id TransformID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

// Local returns the local transform of id.
func (t *TransformTree) Local(id TransformID) Transform {
	if !t.valid(id) {
		return IdentityTransform
	}
	return t.nodes[id].local
}

// SetLocal replaces the local transform of id.
func (t *TransformTree) SetLocal(id TransformID, local Transform) {
	if t.valid(id) {
		t.nodes[id].local = local
	}
}

// Parent returns the parent of id, or NoTransform.
func (t *TransformTree) Parent(id TransformID) TransformID {
	if !t.valid(id) {
		return NoTransform
	}
	return t.nodes[id].parent
}

// SetParent moves id under parent. Making a node its own ancestor is
// rejected.
func (t *TransformTree) SetParent(id, parent TransformID) error {
	if !t.valid(id) {
		return fmt.Errorf("blueberry: transform %d of %d: %w", id, len(t.nodes), ErrIndexOutOfRange)
	}
	if parent != NoTransform {
		if !t.valid(parent) {
			return fmt.Errorf("blueberry: transform parent %d of %d: %w", parent, len(t.nodes), ErrIndexOutOfRange)
		}
		for p := parent; p != NoTransform; p = t.nodes[p].parent {
			if p == id {
				return fmt.Errorf("blueberry: transform %d cannot be parented under its descendant %d", id, parent)
			}
		}
	}
	t.nodes[id].parent = parent
	return nil
}

// WorldMatrix returns the affine matrix [a, b, c, d, tx, ty] mapping id's
// local space to world space.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t *TransformTree) WorldMatrix(id TransformID) [6]float64 {
	if !t.valid(id) {
		return identityMatrix
	}
	m := localMatrix(t.nodes[id].local)
	for p := t.nodes[id].parent; p != NoTransform; p = t.nodes[p].parent {
		m = multiplyAffine(localMatrix(t.nodes[p].local), m)
	}
	return m
}

// World returns the world position of id's origin.
func (t *TransformTree) World(id TransformID) Vec2 {
	m := t.WorldMatrix(id)
	return Vec2{m[4], m[5]}
}

// WorldRotation returns the accumulated clockwise rotation of id in degrees.
func (t *TransformTree) WorldRotation(id TransformID) float64 {
	if !t.valid(id) {
		return 0
	}
	r := 0.0
	for p := id; p != NoTransform; p = t.nodes[p].parent {
		r += t.nodes[p].local.Rotation
	}
	return r
}

// WorldScale returns the accumulated scale of id.
func (t *TransformTree) WorldScale(id TransformID) (float64, float64) {
	if !t.valid(id) {
		return 1, 1
	}
	sx, sy := 1.0, 1.0
	for p := id; p != NoTransform; p = t.nodes[p].parent {
		sx *= t.nodes[p].local.ScaleX
		sy *= t.nodes[p].local.ScaleY
	}
	return sx, sy
}

var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// localMatrix composes Scale -> Rotate -> Translate. Positive rotation is
// clockwise on screen because y points down.
func localMatrix(l Transform) [6]float64 {
	sin, cos := math.Sincos(l.Rotation * math.Pi / 180)
	return [6]float64{
		cos * l.ScaleX, sin * l.ScaleX,
		-sin * l.ScaleY, cos * l.ScaleY,
		l.X, l.Y,
	}
}

// multiplyAffine returns p * c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// --- TransformComponent ---

// TransformComponent places an object in the world. An object holds at most
// one; a second is rejected on attach.
type TransformComponent struct {
	ComponentBase
	tree *TransformTree
	id   TransformID
}

// NewTransformComponent adds a root node at (x, y) to tree. A nil tree gets a
// private one.
func NewTransformComponent(tree *TransformTree, x, y float64) *TransformComponent {
	if tree == nil {
		tree = NewTransformTree()
	}
	local := IdentityTransform
	local.X, local.Y = x, y
	id, _ := tree.Add(local, NoTransform)
	return &TransformComponent{tree: tree, id: id}
}

// OnAttach rejects the component when obj already has a transform.
func (t *TransformComponent) OnAttach(obj *GameObject) bool {
	return !HasComponent[*TransformComponent](obj)
}

// OnDetach frees the transform node. The component reads as the origin from
// then on.
func (t *TransformComponent) OnDetach(*GameObject) {
	t.tree.Remove(t.id)
	t.id = NoTransform
}

// IsDisposed reports whether the transform's node has been freed.
func (t *TransformComponent) IsDisposed() bool { return t.id == NoTransform }

// Tree returns the tree holding the transform.
func (t *TransformComponent) Tree() *TransformTree { return t.tree }

// ID returns the transform's node in Tree.
func (t *TransformComponent) ID() TransformID { return t.id }

// Local returns the local transform.
func (t *TransformComponent) Local() Transform { return t.tree.Local(t.id) }

// SetLocal replaces the local transform.
func (t *TransformComponent) SetLocal(l Transform) { t.tree.SetLocal(t.id, l) }

// SetPosition sets the local position.
func (t *TransformComponent) SetPosition(x, y float64) {
	l := t.Local()
	l.X, l.Y = x, y
	t.SetLocal(l)
}

// Translate moves the local position by (dx, dy).
func (t *TransformComponent) Translate(dx, dy float64) {
	l := t.Local()
	l.X += dx
	l.Y += dy
	t.SetLocal(l)
}

// SetRotation sets the local clockwise rotation in degrees.
func (t *TransformComponent) SetRotation(deg float64) {
	l := t.Local()
	l.Rotation = deg
	t.SetLocal(l)
}

// SetScale sets the local scale.
func (t *TransformComponent) SetScale(sx, sy float64) {
	l := t.Local()
	l.ScaleX, l.ScaleY = sx, sy
	t.SetLocal(l)
}

// SetParent moves the transform under parent, or to the root for nil. Both
// must share a tree.
func (t *TransformComponent) SetParent(parent *TransformComponent) error {
	if parent == nil {
		return t.tree.SetParent(t.id, NoTransform)
	}
	if parent.tree != t.tree {
		return fmt.Errorf("blueberry: transforms belong to different trees")
	}
	return t.tree.SetParent(t.id, parent.id)
}

// WorldPosition returns the world position.
func (t *TransformComponent) WorldPosition() Vec2 { return t.tree.World(t.id) }

// Position returns the world position rounded to whole pixels.
func (t *TransformComponent) Position() Vec2i {
	p := t.WorldPosition()
	return Vec2i{int(math.Round(p.X)), int(math.Round(p.Y))}
}

// Rotation returns the world rotation in degrees.
func (t *TransformComponent) Rotation() float64 { return t.tree.WorldRotation(t.id) }

// Scale returns the world scale.
func (t *TransformComponent) Scale() (float64, float64) { return t.tree.WorldScale(t.id) }

func (t *TransformComponent) Debug(sink DebugSink) {
	p := t.Position()
	sink.Text(fmt.Sprintf("pos (%d, %d) rot %.1f", p.X, p.Y, t.Rotation()))
}
