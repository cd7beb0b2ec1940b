package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

// Config holds renderer subprocess configuration.
type Config struct {
	// Command is the renderer executable, e.g. "pasta"
	Command string

	// Args are extra arguments passed to the renderer
	Args []string

	// WorkDir is the working directory for the renderer
	WorkDir string

	// Env contains additional environment variables
	Env map[string]string
}

// Process manages the external renderer subprocess. Frames go in as
// JSON lines on stdin; slide events come back as JSON lines on stdout.
type Process struct {
	config Config
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
}

// NewProcess creates a renderer process wrapper. Nothing is spawned
// until Start.
func NewProcess(config Config) *Process {
	return &Process{
		config: config,
	}
}

// Start spawns the renderer subprocess with stdin and stdout pipes.
func (p *Process) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrRendererAlreadyRunning
	}

	p.ctx, p.cancel = context.WithCancel(ctx)

	p.cmd = exec.CommandContext(p.ctx, p.config.Command, p.config.Args...)

	if p.config.WorkDir != "" {
		p.cmd.Dir = p.config.WorkDir
	}

	if len(p.config.Env) > 0 {
		p.cmd.Env = os.Environ()
		for k, v := range p.config.Env {
			p.cmd.Env = append(p.cmd.Env, k+"="+v)
		}
	}

	var err error
	p.stdin, err = p.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	p.stdout, err = p.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start renderer %s: %w", p.config.Command, err)
	}

	p.running = true
	return nil
}

// Stdin returns the writer frames are encoded onto.
func (p *Process) Stdin() io.WriteCloser {
	return p.stdin
}

// Stdout returns the reader slide events arrive on.
func (p *Process) Stdout() io.Reader {
	return p.stdout
}

// Wait blocks until the renderer exits and returns its exit code.
func (p *Process) Wait() (int, error) {
	if p.cmd == nil {
		return -1, ErrRendererNotStarted
	}

	err := p.cmd.Wait()

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// Cancel terminates the renderer subprocess.
func (p *Process) Cancel() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running || p.cancel == nil {
		return nil
	}

	p.cancel()
	return nil
}

// IsRunning returns whether the renderer is currently executing.
func (p *Process) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
