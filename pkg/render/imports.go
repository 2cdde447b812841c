package render

// ModuleContentful is the module the default renderers import field and
// entry types from.
const ModuleContentful = "contentful"

// ImportRequirement records a symbol a rendered declaration needs. Identity is
// the (Module, Symbol) pair.
type ImportRequirement struct {
	Module   string
	Symbol   string
	TypeOnly bool
}

// TypeImport is a shorthand for a type-only requirement.
func TypeImport(module, symbol string) ImportRequirement {
	return ImportRequirement{Module: module, Symbol: symbol, TypeOnly: true}
}

type importKey struct {
	module string
	symbol string
}

// ImportSet is an insertion-ordered, de-duplicating collection of import
// requirements. Registering a pair twice is a no-op, except that a value
// registration upgrades an earlier type-only one.
type ImportSet struct {
	order   []ImportRequirement
	entries map[importKey]int
}

// NewImportSet returns an empty set.
func NewImportSet() *ImportSet {
	return &ImportSet{entries: make(map[importKey]int)}
}

// Add registers a requirement and reports whether it changed the set.
func (s *ImportSet) Add(req ImportRequirement) bool {
	if s.entries == nil {
		s.entries = make(map[importKey]int)
	}
	key := importKey{module: req.Module, symbol: req.Symbol}
	if idx, ok := s.entries[key]; ok {
		if s.order[idx].TypeOnly && !req.TypeOnly {
			s.order[idx].TypeOnly = false
			return true
		}
		return false
	}
	s.entries[key] = len(s.order)
	s.order = append(s.order, req)
	return true
}

// AddDecl registers one requirement per symbol of an import declaration.
func (s *ImportSet) AddDecl(module string, typeOnly bool, symbols ...string) {
	for _, symbol := range symbols {
		s.Add(ImportRequirement{Module: module, Symbol: symbol, TypeOnly: typeOnly})
	}
}

// Merge adds every requirement of reqs in order.
func (s *ImportSet) Merge(reqs []ImportRequirement) {
	for _, req := range reqs {
		s.Add(req)
	}
}

// Requirements returns the requirements in insertion order.
func (s *ImportSet) Requirements() []ImportRequirement {
	return append([]ImportRequirement(nil), s.order...)
}

// Has reports whether the pair was registered.
func (s *ImportSet) Has(module, symbol string) bool {
	_, ok := s.entries[importKey{module: module, symbol: symbol}]
	return ok
}

// Len returns the number of distinct requirements.
func (s *ImportSet) Len() int {
	return len(s.order)
}
