// Package container assembles bindings into an immutable resolution surface.
//
// # Overview
//
// A binding describes how instances of one type are produced and under which
// caching policy; the container stores bindings keyed by (context type,
// argument type, created type, tag) and turns lookups into factory
// functions. Registration happens on a [Builder]; once [Builder.Build] runs,
// the binding set is frozen and resolution is lock-free at the container
// level.
//
// # Lifecycle
//
//  1. Create: b := container.NewBuilder()
//  2. Register bindings and modules
//  3. Build: c, err := b.Build() — ready hooks fire, eager singletons are
//     created, the container freezes
//  4. Resolve
//
// # Binding
//
//	b := container.NewBuilder()
//
//	// Singleton — created once, on first use
//	container.BindSingleton(b, "db", func(rc binding.ResolutionContext) (*Database, error) {
//	    cfg, err := container.Resolve[*config.Config](rc.Resolver, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return OpenDatabase(cfg.DB)
//	})
//
//	// Multiton — one instance per distinct argument
//	container.BindMultiton(b, "", func(rc binding.ResolutionContext, shard int) (*Shard, error) {
//	    return OpenShard(shard)
//	})
//
//	// Factory — a fresh instance every call
//	container.BindFactory(b, "", func(rc binding.ResolutionContext, name string) (*Session, error) {
//	    return NewSession(name), nil
//	})
//
//	// Eager singleton — forced into existence by Build
//	container.BindEagerSingleton(b, "warm", func(rc binding.ResolutionContext) (*Cache, error) {
//	    return WarmCache()
//	})
//
//	// Pre-built value
//	container.BindInstance(b, "version", "1.4.2")
//
// # Resolving
//
//	c, err := b.Build()
//
//	db, err := container.Resolve[*Database](c, "db")
//	shard, err := container.ResolveWith[int, *Shard](c, "", 3)
//	newShard, err := container.FactoryFor[int, *Shard](c, "")
//
// # Scopes and retention
//
// Cached bindings accept options controlling where and how strongly their
// instances are held:
//
//	sessions := scope.NewContextScope()
//	container.BindSingleton(b, "prefs", newPrefs,
//	    binding.InContext[*Session](),
//	    binding.InScope(sessions),
//	    binding.WithRef(refs.Weak),
//	)
//
//	prefs, err := container.ResolveCtx[*Session, *Prefs](c, session, "prefs")
//
// # Modules
//
// Registrations group into named [Module] values imported with
// [Builder.Import]; a name imports at most once. The stock modules in
// package modules wire configuration, logging and routing this way.
package container
