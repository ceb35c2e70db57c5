//go:build !debug

package engine

const debugAsserts = false
