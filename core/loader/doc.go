// Package loader registers the HTTP features of the serve command.
//
// Each feature implements the Feature interface; the Manager loads the enabled ones
// in registration order.
//
//	mgr := loader.NewManager()
//	mgr.Register(videos.NewFeature(store, uploader, logger))
//	names, err := mgr.LoadAll(app)
package loader
