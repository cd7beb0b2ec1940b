package render

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Result represents the outcome of a renderer run.
type Result struct {
	ExitCode int
	Duration time.Duration
	Err      error
}

// Runner wires a renderer Process to a Bridge: it drains the bridge's
// frame channel into the process stdin and feeds decoded slide events
// from the process stdout back into the bridge.
type Runner struct {
	proc   *Process
	bridge *Bridge

	doneChan chan Result

	mu        sync.Mutex
	running   bool
	startTime time.Time
}

// NewRunner creates a runner for the given process and bridge.
func NewRunner(proc *Process, bridge *Bridge) *Runner {
	return &Runner{
		proc:     proc,
		bridge:   bridge,
		doneChan: make(chan Result, 1),
	}
}

// Run starts the renderer and the pump goroutines. It returns once the
// process is up; completion is reported on Done.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrRendererAlreadyRunning
	}
	r.running = true
	r.startTime = time.Now()
	r.mu.Unlock()

	if err := r.proc.Start(ctx); err != nil {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		r.pumpFrames(ctx)
	}()

	go func() {
		defer wg.Done()
		r.readSlides()
	}()

	go func() {
		exitCode, err := r.proc.Wait()
		wg.Wait()

		r.mu.Lock()
		duration := time.Since(r.startTime)
		r.running = false
		r.mu.Unlock()

		r.doneChan <- Result{
			ExitCode: exitCode,
			Duration: duration,
			Err:      err,
		}
		close(r.doneChan)
	}()

	return nil
}

// pumpFrames encodes frames as JSON lines onto the renderer's stdin.
func (r *Runner) pumpFrames(ctx context.Context) {
	enc := json.NewEncoder(r.proc.Stdin())
	defer r.proc.Stdin().Close()

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-r.bridge.Frames():
			if !ok {
				return
			}
			if err := enc.Encode(frame); err != nil {
				// Pipe closed, the renderer is gone.
				log.Printf("renderer runner: frame write failed: %v", err)
				return
			}
		}
	}
}

// readSlides decodes slide events from the renderer's stdout, one JSON
// object per line. Malformed lines are logged and skipped.
func (r *Runner) readSlides() {
	scanner := bufio.NewScanner(r.proc.Stdout())

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev SlideEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			log.Printf("renderer runner: skipping malformed slide event: %v", err)
			continue
		}
		r.bridge.Slide(ev)
	}
}

// Done returns the channel the run result is delivered on.
func (r *Runner) Done() <-chan Result {
	return r.doneChan
}

// Cancel terminates the renderer.
func (r *Runner) Cancel() error {
	return r.proc.Cancel()
}

// IsRunning returns whether the renderer is executing.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
