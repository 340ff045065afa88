// Package platform contains OS-specific helpers: export directory management
// and revealing exported files in the system file manager.
package platform
