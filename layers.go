package monobit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/monobit/internal/pixbuf"
)

// BlendMode is how a layer is merged into the layers below it.
type BlendMode uint8

const (
	// BlendNormal replaces lower pixels wherever the layer is opaque.
	BlendNormal BlendMode = iota
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	if m == BlendNormal {
		return "Normal"
	}
	return "Unknown"
}

// layer is one plane of the stack.
type layer struct {
	id      int
	name    string
	visible bool
	blend   BlendMode
	buf     *pixbuf.Buffer
}

// LayerInfo describes a layer.
type LayerInfo struct {
	ID      int
	Name    string
	Visible bool
	Blend   BlendMode
	Active  bool
}

// newLayer creates a visible, transparent layer with the next id.
func (e *Engine) newLayer(name string) *layer {
	id := e.nextID
	e.nextID++
	return &layer{
		id:      id,
		name:    layerName(name, "Layer "+strconv.Itoa(id)),
		visible: true,
		buf:     e.pool.Get(e.width, e.height),
	}
}

// layerName normalises a user supplied name to trimmed NFC, using def when
// nothing is left.
func layerName(name, def string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return def
	}
	return name
}

// LayerCount returns the number of layers. It is always at least 1.
func (e *Engine) LayerCount() int {
	return len(e.layers)
}

// ActiveLayer returns the index of the layer primitives write to.
func (e *Engine) ActiveLayer() int {
	return e.active
}

// Layers describes the stack, bottom layer first.
func (e *Engine) Layers() []LayerInfo {
	infos := make([]LayerInfo, len(e.layers))
	for i, l := range e.layers {
		infos[i] = LayerInfo{
			ID:      l.id,
			Name:    l.name,
			Visible: l.visible,
			Blend:   l.blend,
			Active:  i == e.active,
		}
	}
	return infos
}

func (e *Engine) validIndex(i int) bool {
	return i >= 0 && i < len(e.layers)
}

// structural finishes a change to the layer stack: the active index is
// clamped, the composite invalidated and a history entry pushed.
func (e *Engine) structural(op string) {
	e.active = min(max(e.active, 0), len(e.layers)-1)
	e.invalidateAll()
	e.atEntry = false
	e.SaveState()
	e.log().Debug("monobit: layer stack changed", "op", op, "layers", len(e.layers), "active", e.active)
}

// AddLayer adds a transparent layer on top of the stack and makes it
// active. An empty name becomes "Layer <id>". It returns the new index.
func (e *Engine) AddLayer(name string) int {
	e.drain()
	e.layers = append(e.layers, e.newLayer(name))
	e.active = len(e.layers) - 1
	e.structural("add")
	return e.active
}

// DeleteLayer removes the layer at index. It reports false, changing
// nothing, for an invalid index or when index is the only layer.
func (e *Engine) DeleteLayer(index int) bool {
	if !e.validIndex(index) {
		return false
	}
	if len(e.layers) == 1 {
		e.log().Warn("monobit: refusing to delete the last layer")
		return false
	}
	e.drain()
	e.pool.Put(e.layers[index].buf)
	e.layers = slices.Delete(e.layers, index, index+1)
	if e.active > index {
		e.active--
	}
	e.structural("delete")
	return true
}

// DeleteLayers removes every listed layer in one step. Duplicate indices
// are ignored. It fails with ErrLayerIndex for an out-of-range index and
// with ErrLastLayer if no layer would survive; the stack is unchanged on
// error.
func (e *Engine) DeleteLayers(indices []int) error {
	idx, err := e.checkIndices(indices)
	if err != nil {
		return err
	}
	if len(idx) >= len(e.layers) {
		e.log().Warn("monobit: refusing to delete every layer", "count", len(idx))
		return ErrLastLayer
	}
	e.drain()

	removedBelow := 0
	activeRemoved := false
	for _, i := range idx {
		if i < e.active {
			removedBelow++
		}
		if i == e.active {
			activeRemoved = true
		}
	}
	// Highest first so earlier indices stay valid.
	for _, i := range slices.Backward(idx) {
		e.pool.Put(e.layers[i].buf)
		e.layers = slices.Delete(e.layers, i, i+1)
	}
	e.active -= removedBelow
	if activeRemoved {
		e.active = min(e.active, len(e.layers)-1)
	}
	e.structural("delete-batch")
	return nil
}

// checkIndices returns the sorted, de-duplicated indices, or an error if
// the list is empty or any index is invalid.
func (e *Engine) checkIndices(indices []int) ([]int, error) {
	if len(indices) == 0 {
		return nil, ErrNoLayers
	}
	for _, i := range indices {
		if !e.validIndex(i) {
			e.log().Warn("monobit: layer index out of range", "index", i, "layers", len(e.layers))
			return nil, fmt.Errorf("%w: %d (have %d)", ErrLayerIndex, i, len(e.layers))
		}
	}
	idx := slices.Clone(indices)
	slices.Sort(idx)
	return slices.Compact(idx), nil
}

// SetActiveLayer makes index the target of later primitives. Writes
// already queued still land on the previous layer. It reports false for an
// invalid index. Changing the active layer alone is not a history entry.
func (e *Engine) SetActiveLayer(index int) bool {
	if !e.validIndex(index) {
		return false
	}
	e.drain()
	e.active = index
	return true
}

// ToggleVisibility flips whether the layer at index takes part in the
// composite. It reports false for an invalid index.
func (e *Engine) ToggleVisibility(index int) bool {
	if !e.validIndex(index) {
		return false
	}
	e.drain()
	e.layers[index].visible = !e.layers[index].visible
	e.structural("visibility")
	return true
}

// SwapLayers exchanges the layers at i and j. The active index follows the
// layer it pointed to. It reports false for an invalid index.
func (e *Engine) SwapLayers(i, j int) bool {
	if !e.validIndex(i) || !e.validIndex(j) {
		return false
	}
	if i == j {
		return true
	}
	e.drain()
	e.layers[i], e.layers[j] = e.layers[j], e.layers[i]
	switch e.active {
	case i:
		e.active = j
	case j:
		e.active = i
	}
	e.structural("swap")
	return true
}

// DuplicateLayers inserts a copy of each listed layer directly above it.
// Invalid and repeated indices are skipped. It returns the number of
// copies made.
func (e *Engine) DuplicateLayers(indices []int) int {
	var idx []int
	for _, i := range indices {
		if e.validIndex(i) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return 0
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)
	e.drain()

	// Highest first so lower insert positions are unaffected.
	for _, i := range slices.Backward(idx) {
		src := e.layers[i]
		// The copy shares the frozen buffer; whichever is written first
		// takes its own copy.
		src.buf.Freeze()
		dup := &layer{
			id:      e.nextID,
			name:    layerName(src.name+" copy", "Layer copy"),
			visible: src.visible,
			blend:   src.blend,
			buf:     src.buf,
		}
		e.nextID++
		e.layers = slices.Insert(e.layers, i+1, dup)
		if e.active > i {
			e.active++
		}
	}
	e.structural("duplicate")
	return len(idx)
}

// CombineLayers merges the listed layers, bottom to top and regardless of
// visibility, into one new layer named name. The result takes the place of
// the lowest listed layer, the originals are removed and the result becomes
// active. It fails with ErrNoLayers or ErrLayerIndex, leaving the stack
// unchanged.
func (e *Engine) CombineLayers(indices []int, name string) error {
	idx, err := e.checkIndices(indices)
	if err != nil {
		return err
	}
	e.drain()

	merged := e.newLayer(name)
	if name == "" {
		merged.name = "Combined"
	}
	for _, i := range idx {
		compositeInto(merged.buf, e.layers[i].buf)
	}
	for _, i := range slices.Backward(idx) {
		e.pool.Put(e.layers[i].buf)
		e.layers = slices.Delete(e.layers, i, i+1)
	}
	e.layers = slices.Insert(e.layers, idx[0], merged)
	e.active = idx[0]
	e.structural("combine")
	return nil
}

// RenameLayer sets the name of the layer at index. Names are trimmed and
// NFC-normalised; an empty name is rejected. It reports false for an
// invalid index or empty name.
func (e *Engine) RenameLayer(index int, name string) bool {
	if !e.validIndex(index) {
		return false
	}
	name = layerName(name, "")
	if name == "" {
		return false
	}
	if e.layers[index].name == name {
		return true
	}
	e.drain()
	e.layers[index].name = name
	e.structural("rename")
	return true
}
