// Package actions defines the closed vocabulary of action descriptors the
// awards console emits.
//
// A descriptor is plain data: a Type tag plus an immutable payload. It carries
// no behavior and dispatching one cannot fail; the store folds it into state.
//
// Every kind has a constructor in this package (CancelAwardEdit, EditAward,
// StartAwardEdit, ...). Constructors have no side effects; code outside this
// package should never build an Action literal by hand.
package actions
