//go:build !privgate_no_initrc_hook

package hooks

// The file-permission checkpoint is compiled in unless the
// privgate_no_initrc_hook build tag is set.
const filePermissionEnabled = true
