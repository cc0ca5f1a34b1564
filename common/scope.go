package common

// frame is a single lexical scope: the module, a function's parameter list or
// a block.
type frame struct {
	symbols map[string]*Symbol
	depth   int
	parent  *frame
}

// ScopeTable tracks the symbols visible at the current point of a traversal.
// It is a stack of frames, each linked to its parent.  The module frame has
// depth 0; entering a function or a block increases the depth by one.
type ScopeTable struct {
	current *frame
	depth   int
}

// NewScopeTable creates a new scope table containing only the module frame.
func NewScopeTable() *ScopeTable {
	return &ScopeTable{
		current: &frame{symbols: make(map[string]*Symbol)},
	}
}

// Depth returns the current scope depth.
func (st *ScopeTable) Depth() int {
	return st.depth
}

// push opens a new frame one level deeper than the current one.
func (st *ScopeTable) push() {
	st.depth++
	st.current = &frame{
		symbols: make(map[string]*Symbol),
		depth:   st.depth,
		parent:  st.current,
	}
}

// pop closes the current frame.  The module frame is never closed.
func (st *ScopeTable) pop() {
	if st.current.parent == nil {
		return
	}

	st.current = st.current.parent
	st.depth--
}

// EnterFunction opens the frame holding a function's parameters.
func (st *ScopeTable) EnterFunction() {
	st.push()
}

// ExitFunction closes every frame opened since the matching EnterFunction.
func (st *ScopeTable) ExitFunction() {
	for st.depth > 1 {
		st.pop()
	}

	st.pop()
}

// PushBlock opens the frame of a nested block.
func (st *ScopeTable) PushBlock() {
	st.push()
}

// PopBlock closes the frame of a nested block.
func (st *ScopeTable) PopBlock() {
	st.pop()
}

// Declare inserts a symbol into the innermost frame, replacing any symbol of
// the same name in that frame.  The symbol's depth is set to the current
// depth.
func (st *ScopeTable) Declare(sym *Symbol) {
	sym.Depth = st.depth
	st.current.symbols[sym.Name] = sym
}

// DeclaredLocally returns the symbol of the given name in the innermost frame.
func (st *ScopeTable) DeclaredLocally(name string) (*Symbol, bool) {
	sym, ok := st.current.symbols[name]
	return sym, ok
}

// Resolve looks up a visible symbol by name, from the innermost frame
// outward.
func (st *ScopeTable) Resolve(name string) (*Symbol, bool) {
	for f := st.current; f != nil; f = f.parent {
		if sym, ok := f.symbols[name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// ResolveAt looks up a visible symbol declared at exactly the given depth.  If
// there is none and the depth is nested inside a function body, the lookup
// falls back to the parameter frame at depth 1.
func (st *ScopeTable) ResolveAt(name string, depth int) (*Symbol, bool) {
	if sym, ok := st.resolveAtDepth(name, depth); ok {
		return sym, true
	}

	if depth > 1 {
		return st.resolveAtDepth(name, 1)
	}

	return nil, false
}

func (st *ScopeTable) resolveAtDepth(name string, depth int) (*Symbol, bool) {
	for f := st.current; f != nil; f = f.parent {
		if f.depth == depth {
			if sym, ok := f.symbols[name]; ok {
				return sym, true
			}
		} else if f.depth < depth {
			break
		}
	}

	return nil, false
}
