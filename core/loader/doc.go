// Package loader mounts feature modules on the fiber app.
//
// Every feature package (catalog, target, integrity) exposes a type that
// satisfies Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The start command registers them on a Manager and calls LoadAll once the
// global middleware is installed. Disabled features are skipped and logged.
package loader
