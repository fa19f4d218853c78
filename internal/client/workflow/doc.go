// Package workflow sequences the award workflows of the console.
//
// Each user-initiated workflow is a Task: a deferred unit of work that, once
// run with a Dispatcher, calls the injected collaborators in a fixed order
// and emits action descriptors at defined points. Tasks suspend only at
// collaborator boundaries (upload start, remote calls, the confirmation
// prompt). Mutating workflows never return errors: failures become error
// notifications, and state descriptors are emitted only once every remote
// step of the workflow has succeeded.
package workflow
