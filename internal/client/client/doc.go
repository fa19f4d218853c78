// Package client contains the console's connection to the award service and
// the bootstrap of its local database.
//
// # Overview
//
// The package provides:
//  1. The Client interface: CreateAward, EditAward, DeleteAward, GetAwards,
//     GetConfig and Ping, each a single request with a single outcome.
//  2. Two implementations sharing one request layer. GRPCClient issues unary
//     calls on /awards.v1.AwardService/<Method> carrying
//     google.protobuf.Struct messages and injects the access token through an
//     interceptor. WSClient multiplexes the same calls over one WebSocket
//     connection and matches responses to requests by id.
//  3. InitDatabase and RunMigrations, which open the SQLite database under an
//     exclusive file lock and apply the embedded goose migrations.
//
// # Error Handling
//
// Transport failures are mapped to sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrConflict.
// Anything else the service reports is a *RemoteError carrying its code and
// message. An access token that is already expired is rejected with
// ErrUnauthorized before anything is sent.
//
// Every call is bounded by the configured request timeout; a timeout surfaces
// as ErrUnavailable.
package client
