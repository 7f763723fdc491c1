package input

// KeyboardState is a snapshot of which keys are down at a single moment.
type KeyboardState struct {
	keys [KeyCount]bool
}

// Down reports whether key is down in this snapshot. Codes outside the
// table read as up.
func (s KeyboardState) Down(key Key) bool {
	return key.Valid() && s.keys[key]
}

// Set marks key as down or up. Codes outside the table are ignored.
func (s *KeyboardState) Set(key Key, down bool) {
	if key.Valid() {
		s.keys[key] = down
	}
}

// Reset marks every key as up.
func (s *KeyboardState) Reset() {
	*s = KeyboardState{}
}

// Keyboard answers edge-detection queries by comparing the current snapshot
// against the one from the previous frame.
type Keyboard struct {
	current  KeyboardState
	previous KeyboardState
}

// Current returns the snapshot for this frame.
func (k *Keyboard) Current() KeyboardState { return k.current }

// Previous returns the snapshot for the prior frame.
func (k *Keyboard) Previous() KeyboardState { return k.previous }

// Up reports whether key is not down this frame.
func (k *Keyboard) Up(key Key) bool {
	if key == KeyAny {
		return k.any(k.Up)
	}
	return !k.current.Down(key)
}

// Down reports whether key is down this frame.
func (k *Keyboard) Down(key Key) bool {
	if key == KeyAny {
		return k.any(k.Down)
	}
	return k.current.Down(key)
}

// Pressed reports whether key went down between the previous frame and this one.
func (k *Keyboard) Pressed(key Key) bool {
	if key == KeyAny {
		return k.any(k.Pressed)
	}
	return k.current.Down(key) && !k.previous.Down(key)
}

// Released reports whether key went up between the previous frame and this one.
func (k *Keyboard) Released(key Key) bool {
	if key == KeyAny {
		return k.any(k.Released)
	}
	return !k.current.Down(key) && k.previous.Down(key)
}

// Held reports whether key was down in both frames.
func (k *Keyboard) Held(key Key) bool {
	if key == KeyAny {
		return k.any(k.Held)
	}
	return k.current.Down(key) && k.previous.Down(key)
}

// Update rotates the current snapshot into previous and installs state as
// current. It must be called exactly once per polling cycle.
func (k *Keyboard) Update(state KeyboardState) {
	k.previous = k.current
	k.current = state
}

// Reset clears both snapshots.
func (k *Keyboard) Reset() {
	k.current.Reset()
	k.previous.Reset()
}

func (k *Keyboard) any(query func(Key) bool) bool {
	for key := Key(0); key < KeyCount; key++ {
		if query(key) {
			return true
		}
	}
	return false
}
