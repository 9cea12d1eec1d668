//go:build !privgate_no_setuid_hook

package hooks

// The credential-fix checkpoint is compiled in unless the
// privgate_no_setuid_hook build tag is set.
const credFixSetuidEnabled = true
