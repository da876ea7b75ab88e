// Package userstore provides auth.Store backends.
//
//   - Memory keeps users in process; used by default and in tests.
//   - Postgres stores users in a "users" table created by the embedded goose
//     migrations (see Migrations).
//   - Mongo stores users in a "users" collection with a unique email index.
//   - Redis stores one hash per user plus an email to id index key.
//
// All backends match emails exactly and report unknown or unparsable ids as
// auth.ErrUserNotFound.
package userstore
