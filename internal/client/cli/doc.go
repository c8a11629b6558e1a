// Package cli provides the interactive stockkeeper command-line client.
//
// It wires configuration, the local session database, the REST client, the
// session store and the list controllers behind a line-oriented REPL. Every
// command except help, login, register and exit is guarded by the gate: an
// anonymous session is sent to login first.
//
// Two views exist: the catalog (entries) and the stock units of one entry
// (units <id>). Navigation commands (search, clear, page, next, prev,
// refresh) act on the current view. Lists are re-rendered whenever their
// controller reports a change; notifications are printed as they arrive.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
