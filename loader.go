package movebind

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Loader maps type strings to reified types using a registry of struct
// classes. Typical programs keep one loader for bindings generated from
// source and one for types discovered on chain.
//
// Register must not run concurrently with resolution. Resolution itself only
// reads the registry (and the cache, which is safe for concurrent use).
type Loader struct {
	classes map[string]StructClass
	logger  *zap.Logger
	cache   *lru.Cache[string, TypeArg]
	lenient bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for registration and resolution events.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithCache memoizes up to size resolutions. The cache is purged on every
// Register. A size of zero or less disables caching.
func WithCache(size int) LoaderOption {
	return func(l *Loader) {
		if size <= 0 {
			l.cache = nil
			return
		}
		c, err := lru.New[string, TypeArg](size)
		if err == nil {
			l.cache = c
		}
	}
}

// WithLenientPhantoms lets an unregistered type stand in a phantom position,
// where it resolves to PhantomOf(name). Without it every type argument must
// resolve.
func WithLenientPhantoms() LoaderOption {
	return func(l *Loader) { l.lenient = true }
}

// NewLoader returns an empty loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{classes: map[string]StructClass{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register adds classes under their canonical names. A later registration
// under the same name replaces the earlier one.
func (l *Loader) Register(classes ...StructClass) {
	for _, c := range classes {
		name := c.TypeName()
		if _, dup := l.classes[name]; dup {
			l.logger.Debug("replacing struct class", zap.String("type", name))
		} else {
			l.logger.Debug("registering struct class", zap.String("type", name),
				zap.Int("typeParams", c.NumTypeParams()))
		}
		l.classes[name] = c
	}
	if l.cache != nil {
		l.cache.Purge()
	}
}

// Lookup returns the class registered under typeName (arguments, if any,
// are ignored).
func (l *Loader) Lookup(typeName string) (StructClass, bool) {
	name, err := baseName(typeName)
	if err != nil {
		return nil, false
	}
	c, ok := l.classes[name]
	return c, ok
}

// Names returns the registered type names in sorted order.
func (l *Loader) Names() []string {
	out := make([]string, 0, len(l.classes))
	for name := range l.classes {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of registered classes.
func (l *Loader) Len() int { return len(l.classes) }

// Reified resolves a type string such as
// "0x2::priority_queue::PriorityQueue<0x2::coin::Coin<0x2::sui::SUI>>".
func (l *Loader) Reified(typeString string) (TypeArg, error) {
	if l.cache != nil {
		if t, ok := l.cache.Get(typeString); ok {
			return t, nil
		}
	}
	t, err := l.resolve(typeString, nil)
	if err != nil {
		l.logger.Debug("type resolution failed", zap.String("type", typeString), zap.Error(err))
		return nil, err
	}
	if l.cache != nil {
		l.logger.Debug("caching resolved type", zap.String("type", typeString))
		l.cache.Add(typeString, t)
	}
	return t, nil
}

// ReifiedStruct is like Reified but requires a struct type.
func (l *Loader) ReifiedStruct(typeString string) (*Reified, error) {
	t, err := l.Reified(typeString)
	if err != nil {
		return nil, err
	}
	r, ok := t.(*Reified)
	if !ok {
		return nil, issuef(CodeTypeMismatch, "%s is not a struct type", t.TypeString())
	}
	return r, nil
}

// ReifiedWith resolves a type string in which the names in params stand for
// already reified type arguments, as in a generic struct's field types.
func (l *Loader) ReifiedWith(typeString string, params map[string]TypeArg) (TypeArg, error) {
	return l.resolve(typeString, params)
}

func (l *Loader) resolve(s string, params map[string]TypeArg) (TypeArg, error) {
	name, args, err := ParseTypeName(s)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		if p, ok := params[name]; ok {
			return p, nil
		}
	}
	if k, ok := PrimitiveByName(name); ok {
		if len(args) > 0 {
			return nil, issuef(CodeArityMismatch, "Type %s expects 0 type arguments, but got %d", name, len(args))
		}
		return k, nil
	}
	if name == "vector" {
		elem, err := l.resolve(args[0], params)
		if err != nil {
			return nil, err
		}
		return Vector(elem), nil
	}

	key, err := compressName(name)
	if err != nil {
		return nil, err
	}
	cls, ok := l.classes[key]
	if !ok {
		return nil, issueWithParams(CodeUnknownType, "Unknown type "+key, "type", key)
	}
	resolved := make([]TypeArg, len(args))
	for i, a := range args {
		t, err := l.resolve(a, params)
		if err != nil {
			if !l.lenient || !cls.IsPhantomParam(i) || !HasCode(err, CodeUnknownType) {
				return nil, err
			}
			t = PhantomOf(a)
		}
		if cls.IsPhantomParam(i) {
			t = Phantom(t)
		}
		resolved[i] = t
	}
	if len(resolved) != cls.NumTypeParams() {
		return nil, issueWithParams(CodeArityMismatch,
			fmt.Sprintf("Type %s expects %d type arguments, but got %d", key, cls.NumTypeParams(), len(resolved)),
			"expected", cls.NumTypeParams(), "got", len(resolved))
	}
	return cls.Reified(resolved...)
}

// DecodeObject resolves the type named by an object query response and
// decodes it.
func (l *Loader) DecodeObject(data ObjectData) (any, error) {
	t := data.ObjectType()
	if t == "" {
		return nil, issuef(CodeMissingField, "object %s does not name its type", data.ObjectID)
	}
	r, err := l.ReifiedStruct(t)
	if err != nil {
		return nil, err
	}
	return r.FromObjectData(data)
}
