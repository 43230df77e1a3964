// Package types defines the values passed between composition layers:
// rule fragments, rule settings, plugin descriptions and the runtime
// context, plus the Capabilities interface packages are probed through.
package types
