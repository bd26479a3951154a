package flow

import "github.com/tanema/gween"

// Action is what happens while a tween runs and after it finishes. next chains another
// tween to start when this one is done.
type Action struct {
	nexts    []func(ts Tweens)
	onChange func(float32)
	onFinish []func()
}

// Tweens maps running tweens to their actions.
type Tweens map[*gween.Tween]*Action

func (ts Tweens) add(t *gween.Tween, onChange func(float32)) *Action {
	a := &Action{onChange: onChange}
	ts[t] = a
	return a
}

func (a *Action) addOnFinish(f func()) *Action {
	a.onFinish = append(a.onFinish, f)
	return a
}

func (a *Action) next(t *gween.Tween, onChange func(float32)) *Action {
	action := &Action{onChange: onChange}
	a.nexts = append(a.nexts,
		func(ts Tweens) {
			ts[t] = action
		})
	return action
}

// Update advances every tween by dt seconds and fires finished actions.
func (ts Tweens) Update(dt float64) {
	for t, a := range ts {
		curr, finished := t.Update(float32(dt))
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			delete(ts, t)
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(ts)
			}
		}
	}
}

func (ts Tweens) clear() {
	for t := range ts {
		delete(ts, t)
	}
}
