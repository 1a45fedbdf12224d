package main

import "os"

// Windows has no SIGHUP; the layout is read once.
func reloadSignals() []os.Signal {
	return nil
}
