// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// DiagnosticNotes are printed under the reference-epoch table of the
// beta-energy command.
var DiagnosticNotes = []string{
	"t_x is the simulation time in units of 1E16 cm / c",
	"r is the simulation jet position in units of 1E16 cm /c",
	"Tobs = t_x - r, which is then converted to days",
}
