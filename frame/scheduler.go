package frame

// Scheduler owns a single callback chain driven by the display refresh.
// The game's Update ticks every scheduler once per frame; a scheduler only
// runs its callbacks while started. Start while running is a no-op, so at
// most one logical chain exists per scheduler and a double start can never
// double the per-frame work.
type Scheduler struct {
	running   bool
	ticks     uint64
	callbacks []func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a per-frame callback. Callbacks run in registration order.
func (s *Scheduler) Add(fn func()) {
	s.callbacks = append(s.callbacks, fn)
}

// Start begins the callback chain if it is not already running.
func (s *Scheduler) Start() {
	s.running = true
}

// Stop cancels the chain. Pending state (registered callbacks, tick count)
// is kept so a later Start resumes where it left off.
func (s *Scheduler) Stop() {
	s.running = false
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Ticks reports how many frames have actually executed.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick runs one frame of the chain. It is the cancellation check: when the
// scheduler is stopped the frame is skipped entirely.
func (s *Scheduler) Tick() {
	if !s.running {
		return
	}
	s.ticks++
	for _, fn := range s.callbacks {
		fn()
	}
}
