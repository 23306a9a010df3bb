package interact

import rl "github.com/gen2brain/raylib-go/raylib"

// startFlash shows the click color for the configured duration, replacing a
// flash already running.
func (o *Interactable) startFlash() {
	if o.surface == nil {
		o.warnOnce("flash", "no visual surface, click flash disabled")
		return
	}
	// Cancel first so the predecessor restores its color before we read it.
	o.flash.Cancel()
	t := &flashTask{
		o:         o,
		prev:      o.surface.GetColor(),
		remaining: o.Config.ClickColor.Duration,
	}
	o.surface.SetColor(o.Config.ClickColor.Color.RGBA())
	o.flash.Start(t)
}

type flashTask struct {
	o         *Interactable
	prev      rl.Color
	remaining float32
	done      bool
}

func (t *flashTask) Step(deltaTime float32) bool {
	t.remaining -= deltaTime
	if t.remaining > 0 {
		return false
	}
	t.restore()
	// Hover changes during the flash were deferred.
	t.o.syncHighlight()
	return true
}

// Cancel restores the pre-flash color without touching the highlight.
func (t *flashTask) Cancel() {
	t.restore()
}

func (t *flashTask) restore() {
	if t.done {
		return
	}
	t.done = true
	t.o.surface.SetColor(t.prev)
}
