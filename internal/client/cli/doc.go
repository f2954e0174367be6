// Package cli provides the interactive Pulse command-line client.
//
// It wires configuration, the client-wide store, API services and an
// interactive REPL. Screens of the web storefront map to commands:
//
//   - products        list the bottle sizes and prices
//   - signup          create an account, then enter the emailed code
//   - verify          open the one-time code screen
//   - login / logout  sign in or out
//   - whoami          show the signed-in profile
//   - order [product] place a bulk order (requires a session)
//   - contact         send a message to the sales team
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The one-time code screen is a bubbletea program driven by otp.Controller.
package cli
