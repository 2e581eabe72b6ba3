package inspect

import (
	"context"
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/omgnotthatguy/errtree/pkg/errtree"
	"github.com/omgnotthatguy/errtree/pkg/log"
	errors2 "github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// ErrRootUnloadable reports that the root pattern itself could not be
// loaded. This is the only fatal condition of a scan; broken packages
// below the root are skipped instead
type ErrRootUnloadable struct {
	Pattern string
	Err     error
}

func (e *ErrRootUnloadable) Error() string {
	return fmt.Sprintf("could not load root pattern %s: %s", e.Pattern, e.Err)
}

func (e *ErrRootUnloadable) Unwrap() error {
	return e.Err
}

const loadMode = packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps

// the interface type behind the built-in error
var errorInterface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

// Collect loads the root pattern and every package beneath it, and returns
// a registry of all named types satisfying the error interface together
// with their qualifying parent edges. Packages below the root that fail to
// load or type-check are skipped with a debug log only; a root that cannot
// be loaded at all yields an ErrRootUnloadable
func Collect(ctx context.Context, pattern string, opts ...InspectOption) (*errtree.Registry, error) {
	o := NewDefaultInspectOptions()
	for _, v := range opts {
		if err := v(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	cfg := &packages.Config{
		Mode:       loadMode,
		Context:    ctx,
		Dir:        o.Dir,
		BuildFlags: o.BuildFlags,
		Tests:      o.Tests,
	}

	roots, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, &ErrRootUnloadable{Pattern: pattern, Err: errors2.Wrap(err, "load failed")}
	}

	roots, rerr := pruneBroken(roots)
	if len(roots) == 0 {
		if rerr == nil {
			rerr = fmt.Errorf("no packages matched")
		}
		return nil, &ErrRootUnloadable{Pattern: pattern, Err: rerr}
	}

	subs := loadSubpackages(cfg, pattern)

	c := &collector{
		registry:   errtree.NewRegistry(DefaultRootLabel),
		seen:       make(map[*types.Named]*errtree.TypeRecord),
		unexported: o.Unexported,
	}

	visited := make(map[string]interface{})
	for _, p := range append(roots, subs...) {
		if _, ok := visited[p.PkgPath]; ok {
			continue
		}
		visited[p.PkgPath] = struct{}{}
		c.visit(p)
	}

	log.Debug().
		Int("packages", len(visited)).
		Int("types", c.registry.Len()).
		Msg("collection complete")
	return c.registry, nil
}

// pruneBroken drops packages that failed to load or type-check, returning
// the survivors and the aggregated load errors
func pruneBroken(pkgs []*packages.Package) ([]*packages.Package, error) {
	var merr *multierror.Error
	keep := make([]*packages.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if broken(p) {
			for _, e := range p.Errors {
				merr = multierror.Append(merr, e)
			}
			log.Debug().Str("pkg", p.PkgPath).Int("errors", len(p.Errors)).Msg("skipping unloadable package")
			continue
		}
		keep = append(keep, p)
	}
	return keep, merr.ErrorOrNil()
}

func broken(p *packages.Package) bool {
	return len(p.Errors) > 0 || p.Types == nil || p.IllTyped
}

// loadSubpackages walks everything below the root pattern. Any failure
// down here is recoverable: many repos carry packages that only build on
// other platforms or behind build tags, and we still want the rest
func loadSubpackages(cfg *packages.Config, pattern string) []*packages.Package {
	// a wildcard pattern already covers its own subpackages
	if strings.Contains(pattern, "...") {
		return nil
	}

	pkgs, err := packages.Load(cfg, pattern+"/...")
	if err != nil {
		log.Debug().Err(err).Str("pattern", pattern).Msg("skipping subpackages")
		return nil
	}

	keep, merr := pruneBroken(pkgs)
	if merr != nil {
		log.Debug().Err(merr).Msg("load errors across subpackages")
	}

	sort.Slice(keep, func(i, j int) bool {
		return keep[i].PkgPath < keep[j].PkgPath
	})
	return keep
}

type collector struct {
	registry   *errtree.Registry
	seen       map[*types.Named]*errtree.TypeRecord
	unexported bool
}

// visit scans every type name in the package scope. Scope names come back
// sorted so discovery order is stable across runs
func (c *collector) visit(p *packages.Package) {
	scope := p.Types.Scope()
	found := 0
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		if !obj.Exported() && !c.unexported {
			continue
		}
		// aliases resolve to the defining type so re-exports dedup
		// onto a single record
		named, ok := types.Unalias(obj.Type()).(*types.Named)
		if !ok {
			continue
		}
		if !qualifies(named) {
			continue
		}
		c.add(named)
		found++
	}
	log.Debug().Str("pkg", p.PkgPath).Int("types", found).Msg("scanned package")
}

// add records the type and, recursively, every qualifying ancestor
// reachable through its declared parent edges. Ancestors defined outside
// the scanned packages still become records so the chain up to the root is
// complete
func (c *collector) add(named *types.Named) *errtree.TypeRecord {
	if rec, ok := c.seen[named]; ok {
		return rec
	}
	rec := c.registry.Add(displayName(named))
	c.seen[named] = rec

	for _, p := range directParents(named) {
		if isUniverseError(p) {
			rec.AddParent(c.registry.Root())
			continue
		}
		rec.AddParent(c.add(p))
	}
	if len(rec.Parents) == 0 {
		rec.AddParent(c.registry.Root())
	}
	return rec
}

// qualifies reports whether the named type or its pointer satisfies the
// error interface. The built-in error itself does not qualify; it is the
// implicit root
func qualifies(named *types.Named) bool {
	if named.Obj().Pkg() == nil {
		return false
	}
	if types.Implements(named, errorInterface) {
		return true
	}
	return types.Implements(types.NewPointer(named), errorInterface)
}

// directParents returns the declared parent edges of the type in
// declaration order: embedded struct fields and embedded interfaces whose
// own named type satisfies error. Embedding the error interface itself is
// returned as the universe error type
func directParents(named *types.Named) []*types.Named {
	var ret []*types.Named
	switch under := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < under.NumFields(); i++ {
			f := under.Field(i)
			if !f.Embedded() {
				continue
			}
			if p := qualifyingNamed(f.Type()); p != nil {
				ret = append(ret, p)
			}
		}
	case *types.Interface:
		for i := 0; i < under.NumEmbeddeds(); i++ {
			if p := qualifyingNamed(under.EmbeddedType(i)); p != nil {
				ret = append(ret, p)
			}
		}
	}
	return ret
}

// qualifyingNamed strips pointers and aliases and returns the named type
// if it qualifies as a parent edge, nil otherwise
func qualifyingNamed(t types.Type) *types.Named {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}
	n, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	if isUniverseError(n) || qualifies(n) {
		return n
	}
	return nil
}

func isUniverseError(n *types.Named) bool {
	return n.Obj().Pkg() == nil && n.Obj().Name() == "error"
}

// displayName qualifies the type name with the import path of the package
// defining it. The built-in error has no package and keeps its bare name
func displayName(named *types.Named) string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}
