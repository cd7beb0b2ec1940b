// Package activity subscribes to the gallery's activity-notification
// feed over Server-Sent Events. The feed delivers short plain-text
// status lines ("3 photos viewed in the last hour" and the like); the
// subscriber reconnects with exponential backoff when the stream drops.
package activity

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Notification is a single activity update from the feed.
type Notification struct {
	// Type is the SSE event type ("activity" or the default "message")
	Type string
	// Text is the activity line to display
	Text string
}

// Subscriber manages the SSE connection to the activity feed.
type Subscriber struct {
	url string

	reconnectDelay    time.Duration
	maxReconnectDelay time.Duration
	probeInterval     time.Duration
	maxFailures       int

	notifications chan Notification
	done          chan struct{}

	mu                  sync.Mutex
	running             bool
	consecutiveFailures int

	client *http.Client
}

// NewSubscriber creates a Subscriber for the activity feed of the
// gallery server at baseURL.
func NewSubscriber(baseURL string) *Subscriber {
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Subscriber{
		url:               fmt.Sprintf("%s/activity/events", baseURL),
		reconnectDelay:    1 * time.Second,
		maxReconnectDelay: 30 * time.Second,
		probeInterval:     5 * time.Second,
		maxFailures:       5,
		notifications:     make(chan Notification, 100),
		done:              make(chan struct{}),
		client: &http.Client{
			Timeout: 0, // SSE connections stay open
		},
	}
}

// Start begins the subscription and returns the notification channel.
// Reconnection is automatic; cancel the context or call Stop to end it.
func (s *Subscriber) Start(ctx context.Context) <-chan Notification {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return s.notifications
	}
	s.running = true
	s.mu.Unlock()

	go s.run(ctx)

	return s.notifications
}

// Stop gracefully stops the subscriber and closes the channel.
func (s *Subscriber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	close(s.done)
}

// IsRunning returns whether the subscriber is currently active.
func (s *Subscriber) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Notifications returns the channel notifications are delivered on.
func (s *Subscriber) Notifications() <-chan Notification {
	return s.notifications
}

func (s *Subscriber) run(ctx context.Context) {
	defer close(s.notifications)

	for {
		select {
		case <-ctx.Done():
			log.Println("activity subscriber: context cancelled, shutting down")
			return
		case <-s.done:
			log.Println("activity subscriber: stop requested, shutting down")
			return
		default:
			// After repeated failures, stop hammering the stream
			// endpoint and probe at a slower cadence instead.
			if s.consecutiveFailures >= s.maxFailures {
				s.probeOnce(ctx)
				s.waitWithContext(ctx, s.probeInterval)
				continue
			}

			if err := s.connect(ctx); err != nil {
				s.consecutiveFailures++
				log.Printf("activity subscriber: connection error (attempt %d): %v", s.consecutiveFailures, err)
				s.backoff(ctx)
			}
		}
	}
}

// connect opens the SSE stream and forwards events until it closes.
func (s *Subscriber) connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	s.resetBackoff()
	log.Printf("activity subscriber: connected to %s", s.url)

	scanner := bufio.NewScanner(resp.Body)
	var current Notification

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		default:
		}

		line := scanner.Text()

		// Blank line terminates an event.
		if line == "" {
			if current.Text != "" {
				if current.Type == "" {
					current.Type = "message"
				}
				s.send(current)
				current = Notification{}
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if current.Text != "" {
				current.Text += "\n" + data
			} else {
				current.Text = data
			}
		case strings.HasPrefix(line, "event:"):
			current.Type = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, ":"):
			// Comment line, ignore.
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return fmt.Errorf("connection closed by server")
}

// backoff waits before the next connection attempt, doubling the delay
// up to the maximum.
func (s *Subscriber) backoff(ctx context.Context) {
	s.waitWithContext(ctx, s.reconnectDelay)

	s.reconnectDelay *= 2
	if s.reconnectDelay > s.maxReconnectDelay {
		s.reconnectDelay = s.maxReconnectDelay
	}
}

func (s *Subscriber) resetBackoff() {
	s.reconnectDelay = 1 * time.Second
	s.consecutiveFailures = 0
}

func (s *Subscriber) waitWithContext(ctx context.Context, duration time.Duration) {
	select {
	case <-ctx.Done():
	case <-s.done:
	case <-time.After(duration):
	}
}

// send delivers a notification without blocking the read loop. The
// gallery only ever shows the latest activity line, so dropping under
// load loses nothing the user would have seen.
func (s *Subscriber) send(n Notification) {
	select {
	case s.notifications <- n:
	default:
		log.Printf("activity subscriber: channel full, dropping notification %q", n.Text)
	}
}

// probeOnce checks whether the feed endpoint is reachable again. On a
// healthy response the backoff state resets so the next loop iteration
// resumes streaming.
func (s *Subscriber) probeOnce(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		log.Printf("activity subscriber: probe request creation failed: %v", err)
		return
	}

	probeClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := probeClient.Do(req)
	if err != nil {
		log.Printf("activity subscriber: probe failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		log.Println("activity subscriber: server responding, resuming stream")
		s.resetBackoff()
	}
}
