// Package plugin exposes the macperms operations as named host commands.
//
// A Registry maps the twelve command names (check_camera_permission,
// request_full_disk_access_permission, ...) to handlers that exchange JSON.
// Check commands answer true or false. Request commands answer null on
// success or an ErrorResponse describing the failure. Serve runs a Registry
// over a newline-delimited JSON stream so a host shell can drive it through
// a pipe.
//
//	reg, err := plugin.New(macperms.Default(), macperms.OSEnv{},
//	    plugin.WithMiddleware(plugin.LoggingMiddleware(logger)),
//	)
//	if err != nil {
//	    return err
//	}
//	err = plugin.Serve(ctx, reg, os.Stdin, os.Stdout)
package plugin
