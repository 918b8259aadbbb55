// Package utils provides small helpers shared by the floor-plan packages.
// It covers list parsing for configuration values that do not fit into a
// domain-specific package.
package utils
