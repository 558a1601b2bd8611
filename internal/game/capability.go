package game

// File capability.go holds the traits that an entity may have on top of being
// an Entity, and the queries used to find out whether it has them.

import "github.com/dekarrin/textquest/internal/tqerrors"

// Holder is the capability of holding other entities. Containers, Rooms and
// the Player are all Holders.
type Holder interface {
	// Name returns the name of the Holder itself.
	Name() string

	// Contains returns whether an entity with the given name is directly
	// held.
	Contains(name string) bool

	// Lookup returns the directly-held entity with the given name.
	Lookup(name string) (Entity, bool)

	// Items returns the directly-held entities in insertion order.
	Items() []Entity

	// CanAdd checks whether Add would accept e, without modifying anything.
	CanAdd(e Entity) error

	// Add places e in the Holder without any state guards. It is used when
	// building the world; commands go through Take and Put.
	Add(e Entity) error

	// Remove removes e from the Holder and returns it.
	Remove(e Entity) (Entity, bool)

	// Take moves e out of the Holder and into taker.
	Take(e Entity, taker Holder) error

	// Put moves e out of source and into the Holder.
	Put(e Entity, source Holder) error
}

// Openable is the capability of being opened and closed. Opening or closing
// something that is already in that state is rejected without modifying it.
type Openable interface {
	IsOpen() bool
	Open() error
	Close() error
}

// Lockable is the capability of being locked and unlocked. If Key returns a
// non-empty name, the player must hold an item with that name to change the
// lock.
type Lockable interface {
	IsLocked() bool
	Lock() error
	Unlock() error
	Key() string
}

// Inspectable is something whose contents can be examined.
type Inspectable interface {
	// Examine returns the text describing the contents.
	Examine() (string, error)
}

// AsHolder returns the Holder capability of v, if it has one.
func AsHolder(v any) (Holder, bool) {
	h, ok := v.(Holder)
	return h, ok
}

// AsOpenable returns the Openable capability of v, if it has one.
func AsOpenable(v any) (Openable, bool) {
	o, ok := v.(Openable)
	return o, ok
}

// AsLockable returns the Lockable capability of v, if it has one.
func AsLockable(v any) (Lockable, bool) {
	l, ok := v.(Lockable)
	return l, ok
}

// AsInspectable returns the Inspectable capability of v, if it has one.
func AsInspectable(v any) (Inspectable, bool) {
	i, ok := v.(Inspectable)
	return i, ok
}

// OpenState is embedded in types that are Openable. The zero value is closed.
type OpenState struct {
	open bool
}

// IsOpen returns whether it is open.
func (st *OpenState) IsOpen() bool {
	return st.open
}

// SetOpen sets the state directly with no checks. It is meant for world
// setup and game logic; player commands use Open and Close.
func (st *OpenState) SetOpen(open bool) {
	st.open = open
}

func (st *OpenState) doOpen(name string) error {
	if st.open {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is already open.", name)
	}
	st.open = true
	return nil
}

func (st *OpenState) doClose(name string) error {
	if !st.open {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is already closed.", name)
	}
	st.open = false
	return nil
}

func (st *OpenState) guard(name string) error {
	if !st.open {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is closed.", name)
	}
	return nil
}

// LockState is embedded in types that are Lockable. The zero value is
// unlocked and needs no key.
type LockState struct {
	locked bool
	key    string
}

// IsLocked returns whether it is locked.
func (ls *LockState) IsLocked() bool {
	return ls.locked
}

// SetLocked sets the state directly with no checks. It is meant for world
// setup and game logic; player commands use Lock and Unlock.
func (ls *LockState) SetLocked(locked bool) {
	ls.locked = locked
}

// Key returns the name of the item needed to change the lock. It is empty if
// no key is needed.
func (ls *LockState) Key() string {
	return ls.key
}

// SetKey sets the name of the item needed to change the lock.
func (ls *LockState) SetKey(key string) {
	ls.key = key
}

func (ls *LockState) doLock(name string) error {
	if ls.locked {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is already locked.", name)
	}
	ls.locked = true
	return nil
}

func (ls *LockState) doUnlock(name string) error {
	if !ls.locked {
		return tqerrors.Rejectf(tqerrors.StateRejected, "The %s is already unlocked.", name)
	}
	ls.locked = false
	return nil
}
