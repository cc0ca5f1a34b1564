package cmd

import "github.com/samber/do"

// newInjector creates the injector providing the services used by the
// commands: the build profile and the compiler configured with it.
func newInjector(profile *BuildProfile) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, profile)

	do.Provide(injector, func(i *do.Injector) (*Compiler, error) {
		return NewCompiler(do.MustInvoke[*BuildProfile](i)), nil
	})

	return injector
}
