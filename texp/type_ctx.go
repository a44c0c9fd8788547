package texp

import (
	"fmt"
	"log/slog"

	"github.com/cottand/texp/internal/log"
)

var logger = log.DefaultLogger.With("section", "texp")

// Fresher keeps track of new variable names
// it is mutable and not suitable for concurrent use
type Fresher struct {
	prefix     string
	freshCount uint64
}

func NewFresher(prefix string) *Fresher {
	return &Fresher{prefix: prefix}
}

func (f *Fresher) next() string {
	f.freshCount++
	return fmt.Sprintf("%s%d", f.prefix, f.freshCount)
}

// cellID indexes TypeCtx.cells. 0 is never allocated, so the zero TVar has no cell.
type cellID uint32

type cell struct {
	name string
	// nil while unbound
	contents TExp
}

// TypeCtx is a type-checking session: it owns binding cells of type variables and the
// counter used to name fresh ones.
//
// A TVar must only be used with the TypeCtx that created it.
// TypeCtx is not safe for concurrent use.
type TypeCtx struct {
	fresher  *Fresher
	cells    []cell
	dnfLimit int

	logger   *slog.Logger
	nfLogger *slog.Logger
}

type Option func(*TypeCtx)

// WithLogger replaces the logger of the context; sections are appended to it
func WithLogger(l *slog.Logger) Option {
	return func(ctx *TypeCtx) {
		ctx.logger = l
	}
}

// WithDNFLimit caps how many alternatives distributing an intersection over unions may produce.
// Past the limit the intersection is kept undistributed. n <= 0 means no limit.
func WithDNFLimit(n int) Option {
	return func(ctx *TypeCtx) {
		ctx.dnfLimit = n
	}
}

// WithFreshPrefix sets the prefix of the names of fresh type variables, "T_" by default
func WithFreshPrefix(prefix string) Option {
	return func(ctx *TypeCtx) {
		ctx.fresher = NewFresher(prefix)
	}
}

func NewTypeCtx(opts ...Option) *TypeCtx {
	ctx := &TypeCtx{
		fresher: NewFresher("T_"),
		// cell 0 is reserved for TVar literals
		cells:  make([]cell, 1),
		logger: logger,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.nfLogger = ctx.logger.With("section", "texp.normalForms")
	return ctx
}

// NewTVar allocates an unbound variable called name.
// Names are not checked for uniqueness
func (ctx *TypeCtx) NewTVar(name string) TVar {
	ctx.cells = append(ctx.cells, cell{name: name})
	return TVar{Name: name, cell: cellID(len(ctx.cells) - 1)}
}

// MakeFreshTVar allocates an unbound variable whose name was never handed out by this context before
func (ctx *TypeCtx) MakeFreshTVar() TVar {
	return ctx.NewTVar(ctx.fresher.next())
}

func (ctx *TypeCtx) cellOf(v TVar) *cell {
	if v.cell == 0 {
		return nil
	}
	if int(v.cell) >= len(ctx.cells) || ctx.cells[v.cell].name != v.Name {
		panic(fmt.Sprintf("type variable %s does not belong to this context", v.Name))
	}
	return &ctx.cells[v.cell]
}

// TVarIsNonEmpty reports whether v has been bound
func (ctx *TypeCtx) TVarIsNonEmpty(v TVar) bool {
	c := ctx.cellOf(v)
	return c != nil && c.contents != nil
}

// TVarContents returns what v is directly bound to, which may be another variable
func (ctx *TypeCtx) TVarContents(v TVar) (TExp, bool) {
	c := ctx.cellOf(v)
	if c == nil || c.contents == nil {
		return nil, false
	}
	return c.contents, true
}

// TVarSetContents binds v to te. Every TExp mentioning v sees the binding.
//
// Cells are write-once: binding an already bound variable, a variable without a cell,
// binding to nil or creating a cycle are contract violations and panic.
func (ctx *TypeCtx) TVarSetContents(v TVar, te TExp) {
	c := ctx.cellOf(v)
	if c == nil {
		panic(fmt.Sprintf("type variable %s has no binding cell", v.Name))
	}
	if te == nil {
		panic(fmt.Sprintf("cannot bind type variable %s to nil", v.Name))
	}
	if c.contents != nil {
		panic(fmt.Sprintf("type variable %s is already bound to %s", v.Name, c.contents))
	}
	if target, ok := ctx.TVarDeref(te).(TVar); ok && target.cell == v.cell && v.cell != 0 {
		panic(fmt.Sprintf("binding %s to %s would create a cycle", v.Name, te))
	}
	c.contents = te
	ctx.logger.Debug("bound type variable", "tvar", v.Name, "to", te)
}

// TVarDeref follows the binding chain of te until it reaches an unbound variable or a type
// that is not a variable. Any other te is returned unchanged.
func (ctx *TypeCtx) TVarDeref(te TExp) TExp {
	// a chain visits each cell at most once unless it is cyclic
	for steps := 0; steps <= len(ctx.cells); steps++ {
		v, ok := te.(TVar)
		if !ok {
			return te
		}
		contents, bound := ctx.TVarContents(v)
		if !bound {
			return v
		}
		te = contents
	}
	panic(fmt.Sprintf("cyclic type variable binding through %s", te))
}
