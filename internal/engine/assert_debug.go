//go:build debug

package engine

const debugAsserts = true
