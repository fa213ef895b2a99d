package monobit

// snapshot is one history entry: the full layer stack and active index.
// Layer buffers are frozen and shared with the live stack until either
// side writes.
type snapshot struct {
	id            uint64
	width, height int
	layers        []layer
	active        int
}

// SaveState records the current layer stack as a new history entry,
// discarding any redo entries. Queued writes are applied first so the entry
// holds every write issued before the call.
func (e *Engine) SaveState() {
	e.drain()
	s := &snapshot{
		id:     e.nextEntry,
		width:  e.width,
		height: e.height,
		layers: make([]layer, len(e.layers)),
		active: e.active,
	}
	e.nextEntry++
	for i, l := range e.layers {
		l.buf.Freeze()
		s.layers[i] = *l
	}
	e.history.Push(s)
	e.entryID = s.id
	e.atEntry = true
	e.log().Debug("monobit: history saved", "entry", s.id, "len", e.history.Len(), "cursor", e.history.Cursor())
}

// Undo restores the previous history entry. It reports false at the oldest
// entry.
//
// Writes made since the last entry are saved as a new entry first, so Redo
// brings them back.
func (e *Engine) Undo() bool {
	e.commit()
	e.remember()
	s, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(s)
	return true
}

// Redo restores the next history entry. It reports false at the newest
// entry. Unsaved writes are saved first, which discards the redo entries.
func (e *Engine) Redo() bool {
	e.commit()
	e.remember()
	s, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(s)
	return true
}

// commit saves the live state if it differs from the current entry.
func (e *Engine) commit() {
	e.drain()
	if !e.atEntry {
		e.SaveState()
	}
}

// CanUndo reports whether Undo would succeed.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// HistoryLen returns the number of history entries.
func (e *Engine) HistoryLen() int { return e.history.Len() }

// restore replaces the live stack with s.
func (e *Engine) restore(s *snapshot) {
	for _, l := range e.layers {
		e.pool.Put(l.buf)
	}
	e.layers = make([]*layer, len(s.layers))
	for i := range s.layers {
		l := s.layers[i]
		e.layers[i] = &l
	}
	e.active = s.active
	if s.width != e.width || s.height != e.height {
		e.setSize(s.width, s.height)
	}
	e.entryID = s.id
	e.atEntry = true
	e.invalidateAll()
	e.log().Debug("monobit: history restored", "entry", s.id, "cursor", e.history.Cursor())
}

// setSize changes the canvas size used by the composite and dirty tracking.
// Layers are resized by the caller.
func (e *Engine) setSize(width, height int) {
	e.width, e.height = width, height
	e.pool.Put(e.composite)
	e.composite = e.pool.Get(width, height)
	e.compositeDirty = true
	e.dirty.Resize(width, height)
	e.surfaceStale = e.surface != nil
}
