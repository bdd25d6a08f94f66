// Package cli provides the HandyLink command-line client.
//
// It wires configuration, the session store, the API client and the
// services into a cobra command tree, and offers an interactive REPL over
// the same commands.
//
// Key features:
//   - login / register / verify / logout / status / refresh
//   - forgot-password / reset-password / profile show|update
//   - jobs, providers, payments, reviews and notifications
//   - repl: an interactive shell that runs the commands above
//
// Missing form fields are prompted for; passwords are read without echo
// when stdin is a terminal. Forms are validated before any request is made.
// Failures are printed as a single user-facing message.
package cli
