//go:build !boundeddebug

package bounded

// checkBounds enables post-execution bound verification. Build with the
// boundeddebug tag to turn it on.
const checkBounds = false
