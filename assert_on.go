//go:build boundeddebug

package bounded

const checkBounds = true
