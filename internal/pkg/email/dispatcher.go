package email

import "log/slog"

// Dispatcher sends emails on a background worker so request handlers never
// block on SMTP. Delivery is best effort, failures are logged only.
type Dispatcher struct {
	svc   EmailService
	queue chan func() error
	done  chan struct{}
}

func NewDispatcher(svc EmailService, queueSize int) *Dispatcher {
	d := &Dispatcher{
		svc:   svc,
		queue: make(chan func() error, queueSize),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for job := range d.queue {
		if err := job(); err != nil {
			slog.Error("background email delivery failed", "error", err)
		}
	}
}

// DispatchCredentials queues a credentials email. It never blocks; if the
// queue is full the email is dropped and a warning is logged.
func (d *Dispatcher) DispatchCredentials(to, employeeName, companyName, loginEmail, employeeCode, tempPassword string) {
	job := func() error {
		return d.svc.SendCredentials(to, employeeName, companyName, loginEmail, employeeCode, tempPassword)
	}
	select {
	case d.queue <- job:
	default:
		slog.Warn("email queue full, dropping credentials email", "to", to)
	}
}

// Close stops accepting new work and waits for queued emails to drain.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
