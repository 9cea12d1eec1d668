//go:build privgate_no_initrc_hook

package hooks

const filePermissionEnabled = false
