// Package utils provides small formatting helpers shared by the HTTP layer
// and the command line tooling.
package utils
