package third

// BindingKind discriminates what a dictionary entry is bound to.
type BindingKind uint8

const (
	// BindBuiltin is a word implemented inside the interpreter with access
	// to the token cursor.
	BindBuiltin BindingKind = iota
	// BindUserWord is a word defined at runtime by `:`...`;`.
	BindUserWord
	// BindForeign is a word implemented by the host program.
	BindForeign
	// BindVariable pushes a fixed reference value when invoked.
	BindVariable
)

// Builtin is a callable bound to a name in the dictionary. It receives the
// interpreter, a mutable cursor into the token vector (builtins that drive
// control flow advance or rewind it), the token vector itself, and its
// length.
type Builtin func(in *Interpreter, cursor *int, tokens []string, length int) error

// Foreign is a callable bound to a name by the host program. Unlike a
// Builtin it does not see the token stream, only the interpreter.
type Foreign func(in *Interpreter) error

// binding is the tagged payload of one dictionary entry.
type binding struct {
	kind BindingKind

	builtin  Builtin
	foreign  Foreign
	defStr   string // user-word: whitespace-joined definition, re-tokenised on each invocation
	variable Value  // variable: the reference value to push
}

const alphabetSize = 128

// trieNode is one byte-indexed node of the dictionary trie: a 128-way
// fanout keyed by a 7-bit ASCII byte, grounded directly on the original
// implementation's trie_node_t (see original_source/src/trie.h). A hash map
// would serve the same name->binding contract equally well; the trie is
// kept because it is the realisation the reference implementation
// specifies and it keeps lookup O(len(name)) without hashing.
type trieNode struct {
	children [alphabetSize]*trieNode
	bound    bool
	binding  binding
}

// Dictionary maps word names to bindings. Lookup is O(len(name)).
type Dictionary struct {
	root trieNode
}

// NewDictionary constructs an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

func (d *Dictionary) nodeFor(name string, create bool) *trieNode {
	node := &d.root
	for i := 0; i < len(name); i++ {
		idx := name[i]
		if idx >= alphabetSize {
			// Names are 7-bit ASCII per spec; out-of-range bytes never
			// match anything already defined.
			if !create {
				return nil
			}
			idx &= alphabetSize - 1
		}
		child := node.children[idx]
		if child == nil {
			if !create {
				return nil
			}
			child = &trieNode{}
			node.children[idx] = child
		}
		node = child
	}
	return node
}

// define installs a binding for name, replacing any existing binding (and
// letting its definition string, if any, become garbage for the Go runtime
// to collect -- there is no manual free step, unlike the C trie this is
// grounded on).
func (d *Dictionary) define(name string, b binding) {
	node := d.nodeFor(name, true)
	node.bound = true
	node.binding = b
}

// DefineBuiltin installs a builtin binding.
func (d *Dictionary) DefineBuiltin(name string, fn Builtin) {
	d.define(name, binding{kind: BindBuiltin, builtin: fn})
}

// DefineWord installs a user-word binding. definition is stored verbatim and
// re-tokenised on every invocation, matching the reference implementation's
// string-level recursion (see SPEC_FULL.md §4.3).
func (d *Dictionary) DefineWord(name, definition string) {
	d.define(name, binding{kind: BindUserWord, defStr: definition})
}

// DefineForeign installs a foreign-function binding.
func (d *Dictionary) DefineForeign(name string, fn Foreign) {
	d.define(name, binding{kind: BindForeign, foreign: fn})
}

// DefineVariable installs a variable binding whose invocation pushes ref.
func (d *Dictionary) DefineVariable(name string, ref Value) {
	d.define(name, binding{kind: BindVariable, variable: ref})
}

// lookup returns the binding for name and whether it was found.
func (d *Dictionary) lookup(name string) (binding, bool) {
	node := d.nodeFor(name, false)
	if node == nil || !node.bound {
		return binding{}, false
	}
	return node.binding, true
}

// Defined reports whether name is bound to anything.
func (d *Dictionary) Defined(name string) bool {
	_, ok := d.lookup(name)
	return ok
}

