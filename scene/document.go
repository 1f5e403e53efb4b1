package scene

import (
	"sort"

	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/render"
	"github.com/AYColumbia/quill/style"
)

// Document owns a scene graph root and the document-wide collaborators: the
// render and system interfaces, the font engine, the cascade input, and the
// named keyframes registry. The document (and everything under it) is
// single-threaded: Update, Render and the mutation APIs must not be called
// concurrently.
type Document struct {
	root *Element

	renderer   render.Interface
	system     render.SystemInterface
	fontEngine render.FontEngine
	cascade    style.Source

	viewport     geom.Vec2
	dpRatio      float64
	rootFontSize float64

	lastUpdateTime float64
	firstUpdate    bool
	frameDelta     float64

	focus     *Element
	keyframes map[string]*KeyframesRule
}

// NewDocument creates a document with a root element of the given tag.
func NewDocument(tag string) *Document {
	doc := &Document{
		dpRatio:     1,
		firstUpdate: true,
		keyframes:   make(map[string]*KeyframesRule),
	}
	doc.root = NewElement(tag)
	doc.root.ownerDocument = doc
	doc.root.localStackingContext = true
	doc.root.stackingContextDirty = true
	return doc
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// SetRenderInterface sets the backend draw calls are issued through.
func (d *Document) SetRenderInterface(r render.Interface) {
	d.renderer = r
}

// SetSystemInterface sets the clock and logging sink.
func (d *Document) SetSystemInterface(s render.SystemInterface) {
	d.system = s
	d.firstUpdate = true
}

// SetFontEngine sets the font face resolver.
func (d *Document) SetFontEngine(engine render.FontEngine) {
	d.fontEngine = engine
	d.root.DirtyFont()
}

// SetCascadeSource sets the matched-declarations supplier. Every element's
// style is invalidated, since any rule may now match differently.
func (d *Document) SetCascadeSource(source style.Source) {
	d.cascade = source
	d.root.DirtyStyle()
	d.root.eachDescendant((*Element).DirtyStyle)
}

// SetViewportDimensions sets the viewport, the containing block of the root.
func (d *Document) SetViewportDimensions(dimensions geom.Vec2) {
	if d.viewport == dimensions {
		return
	}
	d.viewport = dimensions
	d.root.boxDirty = true
	d.root.DirtyOffset()
}

// SetDensityIndependentPixelRatio sets the dp-to-px scale used during style
// computation.
func (d *Document) SetDensityIndependentPixelRatio(ratio float64) {
	if ratio <= 0 || ratio == d.dpRatio {
		return
	}
	d.dpRatio = ratio
	d.root.DirtyStyle()
	d.root.eachDescendant((*Element).DirtyStyle)
}

func (d *Document) environment() style.Environment {
	return style.Environment{DPRatio: d.dpRatio, RootFontSize: d.rootFontSize}
}

// GetElementById searches the tree for the element with the given id.
func (d *Document) GetElementById(id string) *Element {
	return d.root.GetElementById(id)
}

// Update runs one update pass over the tree in dependency order: style,
// boxes, offsets, transforms, animations, stacking. Animation time advances
// by the system clock delta since the previous Update.
func (d *Document) Update() {
	now := 0.0
	if d.system != nil {
		now = d.system.ElapsedTime()
	}
	if d.firstUpdate {
		d.firstUpdate = false
		d.frameDelta = 0
	} else {
		d.frameDelta = now - d.lastUpdateTime
	}
	d.lastUpdateTime = now

	d.rootFontSize = d.root.ComputedValues().FontSize()
	d.root.Update(d.dpRatio)
}

// Render runs one render pass over the already-clean stacking order.
func (d *Document) Render() {
	if d.renderer == nil {
		return
	}
	d.root.Render()
	d.renderer.SetTransform(nil)
	d.renderer.EnableScissorRegion(false)
}

// Keyframe is one stop of a named keyframes set: at Fraction of the
// animation's duration, the property takes Value.
type Keyframe struct {
	Fraction float64
	ID       property.ID
	Value    property.Value
}

// KeyframesRule is a named, ordered keyframes set the 'animation' property
// can reference.
type KeyframesRule struct {
	keys []Keyframe
}

// AddKeyframes registers a named keyframes set, replacing any previous set
// with the same name.
func (d *Document) AddKeyframes(name string, keys []Keyframe) {
	sorted := append([]Keyframe(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Fraction < sorted[j].Fraction })
	d.keyframes[name] = &KeyframesRule{keys: sorted}
	d.root.animationDirty = true
}

// Keyframes returns the named keyframes set.
func (d *Document) Keyframes(name string) (*KeyframesRule, bool) {
	k, ok := d.keyframes[name]
	return k, ok
}

// byProperty splits the keyframes per animated property, preserving
// fraction order.
func (k *KeyframesRule) byProperty() map[property.ID][]Keyframe {
	out := make(map[property.ID][]Keyframe)
	for _, key := range k.keys {
		out[key.ID] = append(out[key.ID], key)
	}
	return out
}
