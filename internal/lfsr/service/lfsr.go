package service

import (
	"math/big"

	"github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

// Lfsr is a Galois linear feedback shift register. When a base is configured its state is
// kept as a string of base symbols and converted on every step.
//
// An Lfsr is not safe for concurrent use: Next mutates the state, so callers sharing an
// instance must serialize access themselves.
type Lfsr struct {
	feedback *big.Int
	mask     *big.Int
	state    lfsrDomain.State
	base     *alphabet
	pad      bool
	padWidth int
}

// New builds an Lfsr from cfg. The base is applied first so the state is validated against it.
func New(cfg lfsrDomain.Config) (*Lfsr, error) {
	l := &Lfsr{}
	if err := l.SetBase(cfg.Base); err != nil {
		return nil, err
	}
	if err := l.SetFeedback(cfg.Feedback); err != nil {
		return nil, err
	}
	if err := l.SetState(cfg.State); err != nil {
		return nil, err
	}
	l.SetPad(cfg.Pad)
	return l, nil
}

// Configure applies the supplied fields of u in the order feedback, base, state, pad.
// Either every supplied field is accepted or the register is left as it was.
func (l *Lfsr) Configure(u lfsrDomain.Update) error {
	next := *l

	if u.Feedback != nil {
		if err := next.SetFeedback(u.Feedback); err != nil {
			return err
		}
	}
	if u.Base != nil {
		if err := next.SetBase(*u.Base); err != nil {
			return err
		}
	}
	if u.State != nil {
		if err := next.SetState(*u.State); err != nil {
			return err
		}
	}
	if u.Pad != nil {
		next.SetPad(*u.Pad)
	}

	*l = next
	return nil
}

// SetFeedback sets the tap mask and derives the register mask, the smallest 2^k-1 covering it.
func (l *Lfsr) SetFeedback(feedback *big.Int) error {
	if feedback == nil || feedback.Sign() < 1 {
		return lfsrDomain.ErrInvalidFeedback
	}

	one := big.NewInt(1)
	mask := new(big.Int).Lsh(one, uint(feedback.BitLen()))
	mask.Sub(mask, one)

	l.feedback = new(big.Int).Set(feedback)
	l.mask = mask
	l.refreshPadWidth()
	return nil
}

// SetState sets the register value. A numeric state is required without a base and a
// symbolic one with a base; 0 and the zero symbol alone are rejected.
func (l *Lfsr) SetState(state lfsrDomain.State) error {
	if l.base == nil {
		if state.IsSymbolic() {
			return errors.Wrap(lfsrDomain.ErrStateType, "numeric state required without a base")
		}
		switch state.Int().Sign() {
		case 0:
			return lfsrDomain.ErrZeroState
		case -1:
			return lfsrDomain.ErrNegativeState
		}
	} else {
		if !state.IsSymbolic() {
			return errors.Wrap(lfsrDomain.ErrStateType, "symbolic state required with a base")
		}
		if state.Symbols() == string(l.base.zero()) {
			return errors.Wrapf(lfsrDomain.ErrDegenerateState, "state %q", state.Symbols())
		}
	}

	l.state = state
	return nil
}

// SetBase sets the custom alphabet, or clears it when base is "". The current state is not
// checked against the new alphabet; call SetState afterwards when it needs to change too.
// Clearing the base turns padding off.
func (l *Lfsr) SetBase(base string) error {
	if base == "" {
		l.base = nil
		l.pad = false
		l.padWidth = 0
		return nil
	}

	a, err := parseAlphabet(base)
	if err != nil {
		return err
	}

	l.base = a
	l.refreshPadWidth()
	return nil
}

// SetPad turns fixed-width output on or off. Without a base padding stays off whatever
// enabled says.
func (l *Lfsr) SetPad(enabled bool) {
	l.pad = enabled && l.base != nil
	l.refreshPadWidth()
}

// refreshPadWidth recomputes the pad width from the mask rendered in the base.
func (l *Lfsr) refreshPadWidth() {
	if !l.pad || l.base == nil || l.mask == nil {
		l.padWidth = 0
		return
	}
	l.padWidth = l.base.width(l.mask)
}

// Next advances the register one step and returns the new state.
//
// The step is next = ((v >> 1) XOR taps) AND mask, where taps is the feedback term when the
// outgoing low bit of v is set and 0 otherwise.
func (l *Lfsr) Next() (lfsrDomain.State, error) {
	value, err := l.value()
	if err != nil {
		return lfsrDomain.State{}, err
	}

	next := new(big.Int).Rsh(value, 1)
	if value.Bit(0) == 1 {
		next.Xor(next, l.feedback)
	}
	next.And(next, l.mask)

	if l.base == nil {
		l.state = lfsrDomain.BigState(next)
		return l.state, nil
	}

	symbols := l.base.encode(next)
	if l.pad {
		symbols = l.base.pad(symbols, l.padWidth)
	}
	l.state = lfsrDomain.SymbolState(symbols)
	return l.state, nil
}

// value returns the current state as an integer.
func (l *Lfsr) value() (*big.Int, error) {
	if l.base == nil {
		if l.state.IsSymbolic() {
			return nil, errors.Wrapf(lfsrDomain.ErrStateMismatch, "state %q without a base", l.state.Symbols())
		}
		return l.state.Int(), nil
	}

	if !l.state.IsSymbolic() {
		return nil, errors.Wrapf(lfsrDomain.ErrStateMismatch, "numeric state %s with base %q", l.state, l.base.raw)
	}
	v, err := l.base.decode(l.state.Symbols())
	if err != nil {
		return nil, errors.Wrapf(lfsrDomain.ErrStateMismatch, "state %q with base %q", l.state.Symbols(), l.base.raw)
	}
	return v, nil
}

// Feedback returns a copy of the feedback term.
func (l *Lfsr) Feedback() *big.Int {
	return new(big.Int).Set(l.feedback)
}

// Mask returns a copy of the register mask.
func (l *Lfsr) Mask() *big.Int {
	return new(big.Int).Set(l.mask)
}

// State returns the current state.
func (l *Lfsr) State() lfsrDomain.State {
	return l.state
}

// Base returns the custom alphabet, or "" when none is set.
func (l *Lfsr) Base() string {
	if l.base == nil {
		return ""
	}
	return l.base.raw
}

// Pad reports whether output is padded.
func (l *Lfsr) Pad() bool {
	return l.pad
}

// PadWidth returns the padded output width in symbols, 0 when padding is off.
func (l *Lfsr) PadWidth() int {
	return l.padWidth
}

// Config returns a snapshot of the register configuration.
func (l *Lfsr) Config() lfsrDomain.Config {
	return lfsrDomain.Config{
		Feedback: l.Feedback(),
		State:    l.state,
		Base:     l.Base(),
		Pad:      l.pad,
	}
}
