//go:build privgate_no_setuid_hook

package hooks

const credFixSetuidEnabled = false
