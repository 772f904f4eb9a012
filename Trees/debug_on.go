//go:build bstdebug

package Trees

// Built with -tags bstdebug, every Insert and Remove is followed by Verify.
const debug = true
