package gg

// ContextOption configures a Context during creation via functional options.
//
// Example:
//
//	pm, _ := gg.NewPixmap(800, 600)
//	dc, _ := gg.NewContext(800, 600, gg.WithPixmap(pm))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap *Pixmap
}

func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithPixmap supplies an existing Pixmap as the Context's backing surface
// instead of allocating a new, transparent one. Its dimensions must match
// the width and height passed to NewContext.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}
