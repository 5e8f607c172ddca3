package ui

import (
	"fmt"
	"os/exec"
	"strings"
)

// Speaker reads text aloud.
type Speaker interface {
	Say(text string) error
}

// CommandSpeaker runs an external text-to-speech program with the text as
// its final argument.
type CommandSpeaker struct {
	// Command is the program and leading arguments, split on whitespace.
	Command string
}

// Say runs the configured command and waits for it to finish.
func (s CommandSpeaker) Say(text string) error {
	fields := strings.Fields(s.Command)
	if len(fields) == 0 {
		return fmt.Errorf("no speech command configured")
	}
	args := append(fields[1:], text)
	if err := exec.Command(fields[0], args...).Run(); err != nil {
		return fmt.Errorf("running %s: %w", fields[0], err)
	}
	return nil
}
