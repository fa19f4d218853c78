// Package upload is the console's upload lifecycle manager.
//
// Files are staged on a Handle keyed by an entity's display id: the reserved
// id while an award is under construction, the award's own id once it
// exists. A key has at most one handle; opening a second one fails with
// ErrHandleExists instead of replacing the first.
//
// Start launches the transfer of everything staged on a handle and returns
// immediately; the returned channel reports how the transfer ended. A handle
// whose transfer finished without errors is released. Staged files are
// persisted so that unfinished handles survive a restart (see Restore).
package upload
