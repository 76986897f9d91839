package target

// Config limits the build-target session.
type Config struct {
	// MaxTargets caps how many targets a session can hold.
	MaxTargets int `mapstructure:"max_targets" default:"100" validate:"min=1"`
}
