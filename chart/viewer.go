package chart

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Viewer displays a rendered chart image. Support is detected once when the
// viewer is constructed, not per call.
type Viewer interface {
	Supported() bool
	Show(path string) error
}

type execViewer struct {
	command string
	args    []string
}

// NewViewer probes the platform for an image opener. The returned viewer is
// always usable: when nothing was found, Supported reports false and Show
// returns an error naming the missing capability.
func NewViewer() Viewer {
	for _, candidate := range openerCandidates() {
		if _, err := exec.LookPath(candidate.command); err == nil {
			return &candidate
		}
	}
	return &execViewer{}
}

func openerCandidates() []execViewer {
	switch runtime.GOOS {
	case "darwin":
		return []execViewer{{command: "open"}}
	case "windows":
		return []execViewer{{command: "rundll32", args: []string{"url.dll,FileProtocolHandler"}}}
	default:
		return []execViewer{{command: "xdg-open"}, {command: "display"}}
	}
}

func (v *execViewer) Supported() bool {
	return v.command != ""
}

func (v *execViewer) Show(path string) error {
	if !v.Supported() {
		return fmt.Errorf("no image viewer found on this system")
	}

	args := append(append([]string{}, v.args...), path)
	cmd := exec.Command(v.command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open chart %s: %w", path, err)
	}
	return nil
}
