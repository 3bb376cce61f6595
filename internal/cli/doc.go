// Package cli provides the interactive CapitalChronicles terminal client.
//
// It wires configuration, the account store, the account and quest services,
// a session and the screen navigator, then runs a REPL whose commands depend
// on the active screen:
//
//	intro      start
//	auth       signup, login
//	menu       adventure, goals, logout
//	adventure  calc, back
//	goals      add, toggle N, delete N, list, savings, back
//
// help and exit|quit work everywhere. Quest numbers are 1-based.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
