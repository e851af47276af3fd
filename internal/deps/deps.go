// Package deps probes for the external executables the transcription
// pipeline shells out to.
package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of a dependency
type Status struct {
	Installed bool
	Path      string
	Version   string
}

// Binary names of the external tools.
const (
	FFmpegBinary   = "ffmpeg"
	PwRecordBinary = "pw-record"
	SphinxBinary   = "pocketsphinx_continuous"
)

// check looks the binary up on PATH and, when found, runs its version
// subcommand to fill in the version string. A failing version query is not an
// error; the binary is still reported as installed.
func check(binary string, versionArgs ...string) Status {
	path, err := exec.LookPath(binary)
	if err != nil {
		return Status{Installed: false}
	}

	status := Status{
		Installed: true,
		Path:      path,
	}

	if len(versionArgs) == 0 {
		return status
	}

	cmd := exec.Command(path, versionArgs...)
	output, err := cmd.Output()
	if err == nil {
		// parse first line as version
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}

// CheckFFmpeg checks if ffmpeg is installed and returns its status.
// ffmpeg is required for MP3 decoding.
func CheckFFmpeg() Status {
	return check(FFmpegBinary, "-version")
}

// CheckPwRecord checks if the PipeWire capture tool is installed.
// pw-record is required for microphone capture.
func CheckPwRecord() Status {
	return check(PwRecordBinary, "--version")
}

// CheckSphinx checks if the local pocketsphinx decoder is installed.
// Only required when the sphinx provider is selected.
func CheckSphinx() Status {
	// pocketsphinx_continuous has no clean version flag; LookPath is the probe.
	return check(SphinxBinary)
}
