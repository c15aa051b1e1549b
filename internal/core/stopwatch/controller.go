package stopwatch

import "stopwatch/internal/core/model"

// Controller maps the two buttons onto timer and history transitions.
type Controller struct {
	timer   *Timer
	history *History
}

// NewController binds a controller to its state.
func NewController(timer *Timer, history *History) *Controller {
	return &Controller{timer: timer, history: history}
}

// PressPrimary toggles the timer between running and stopped.
func (controller *Controller) PressPrimary() {
	if controller.timer.Running() {
		controller.timer.Stop()
		return
	}
	controller.timer.Start()
}

// PressSecondary records a lap while running and resets while stopped.
func (controller *Controller) PressSecondary() {
	if controller.timer.Running() {
		controller.history.Add(model.NewEntry(controller.timer.Elapsed()))
		return
	}
	controller.history.Clear()
	controller.timer.Reset()
}
