package container

// Module is a named bundle of registrations, imported into a [Builder] with
// [Builder.Import]. Modules with the same name are imported once; later
// imports are silently skipped, so shared infrastructure modules can be
// imported from several places.
//
//	var CacheModule = container.Module{
//	    Name: "cache",
//	    Register: func(b *container.Builder) error {
//	        _, err := container.BindSingleton(b, "cache", newCache)
//	        return err
//	    },
//	}
type Module struct {
	Name     string
	Register func(b *Builder) error
}
