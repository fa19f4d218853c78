// Package notify implements the console's transient success and error
// messages.
package notify
