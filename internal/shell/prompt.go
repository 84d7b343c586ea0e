package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers line by line. Lines are scanned on a goroutine so a
// pending read never blocks cancellation.
type prompter struct {
	ctx   context.Context
	out   io.Writer
	lines chan string
	errc  chan error
	done  chan struct{}
}

func newPrompter(ctx context.Context, in io.Reader, out io.Writer) *prompter {
	p := &prompter{
		ctx:   ctx,
		out:   out,
		lines: make(chan string),
		errc:  make(chan error, 1),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(p.lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
		for sc.Scan() {
			select {
			case p.lines <- sc.Text():
			case <-p.done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			p.errc <- err
		}
	}()
	return p
}

// ask prints prompt and returns the next line without its line ending.
// It returns io.EOF at end of input and ctx.Err() on cancellation.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-p.ctx.Done():
		return "", p.ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			select {
			case err := <-p.errc:
				return "", err
			default:
				return "", io.EOF
			}
		}
		return strings.TrimRight(l, "\r"), nil
	}
}

func (p *prompter) close() { close(p.done) }
