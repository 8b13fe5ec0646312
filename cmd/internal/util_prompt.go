package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// prompter asks for login details. Secrets are read with echo off when the
// input is a terminal; otherwise every answer is a line of input, so a
// username and password can be piped in.
type prompter struct {
	out        io.Writer
	lines      *bufio.Reader
	readSecret func() ([]byte, error)
}

var stdPrompter = newPrompter(os.Stdin, os.Stderr)

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{
		out:   out,
		lines: bufio.NewReader(in),
	}
	if f, ok := in.(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readSecret = func() ([]byte, error) { return terminal.ReadPassword(fd) }
	}
	return p
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

func (p *prompter) askSecret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if p.readSecret == nil {
		return p.readLine()
	}
	// the terminal swallowed the newline
	defer fmt.Fprintln(p.out)
	input, err := p.readSecret()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(input)), nil
}

func (p *prompter) readLine() (string, error) {
	value, err := p.lines.ReadString('\n')
	if err == io.EOF && value != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
