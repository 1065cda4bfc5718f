package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Task is a named function run on a fixed interval
type Task struct {
	Name     string
	Interval time.Duration
	Fn       func(context.Context) error
}

// Scheduler runs background maintenance tasks, currently the roll-archive
// flush. Tasks run until Stop cancels their shared context.
type Scheduler struct {
	tasks   []*Task
	running bool
	mutex   sync.Mutex
	cancel  context.CancelFunc
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make([]*Task, 0),
	}
}

// AddTask registers a task to run every interval once the scheduler starts
func (s *Scheduler) AddTask(name string, interval time.Duration, fn func(context.Context) error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tasks = append(s.tasks, &Task{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
}

// Start launches all registered tasks
func (s *Scheduler) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	for _, task := range s.tasks {
		go s.runTask(ctx, task)
	}

	log.Println("Scheduler started with", len(s.tasks), "tasks")
}

// Stop cancels all running tasks
func (s *Scheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.running = false
	log.Println("Scheduler stopped")
}

// runTask runs one task at its interval until the context is cancelled
func (s *Scheduler) runTask(ctx context.Context, task *Task) {
	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := task.Fn(ctx); err != nil {
				log.Printf("Error running task %s: %v", task.Name, err)
			}
		case <-ctx.Done():
			log.Printf("Task %s stopped", task.Name)
			return
		}
	}
}
