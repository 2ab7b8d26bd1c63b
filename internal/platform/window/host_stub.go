//go:build !ebiten

package window

// Run reports that this build has no window backend.
func Run(opts Options) error {
	opts.withDefaults().Logger.Warn("window host unavailable", "hint", "rebuild with -tags ebiten")
	return ErrUnsupported
}
