//go:build alwaysdraw

package main

func init() {
	ForceAlwaysDraw = true

	DebugPutsPersist("always draw", "true")
}
