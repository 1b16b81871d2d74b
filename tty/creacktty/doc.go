// Package creacktty allocates a pseudo-terminal via github.com/creack/pty/v2.
// Keys written to the controlling side (Inject) are read from the terminal side,
// which makes it usable for scripted sessions.
package creacktty
