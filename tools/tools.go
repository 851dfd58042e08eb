//go:build tools

// Package tools tracks the versions of code generators in go.mod.
//
// mockgen regenerates internal/checker/checker_mock.go via go generate.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
