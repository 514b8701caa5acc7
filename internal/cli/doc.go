// Package cli provides the interactive userkeeper command-line client.
//
// It wires the bounded user store, the username export writer, and a menu
// loop over standard input. Typical flow: print the numbered menu, read a
// choice, run the matching operation, print its status line, repeat.
//
// Key features:
//   - Register a user (username, password, age) into a fixed-capacity store
//   - Change the first user's password
//   - Export usernames to a text file, one per line
//   - Print the total age across all users
//   - Delete the first user
//
// The loop is started via App.Run(ctx), which blocks until the user picks
// the exit choice or standard input ends. See App and runMenu for details.
package cli
