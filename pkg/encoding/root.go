package encoding

import "fmt"

// rootEncoder. bottom of every encoder chain: direction access bits + roundabout bit.
// keys nobody in the chain knows end here as ErrUnknownKey.
type rootEncoder struct {
	forward    BoolField
	backward   BoolField
	roundabout BoolField
	defined    bool
}

func newRootEncoder() *rootEncoder {
	return &rootEncoder{}
}

func (r *rootEncoder) DefineWayBits(shift int) (int, error) {
	if r.defined {
		return shift, ErrBitsAlreadyUsed
	}
	var err error
	if r.forward, shift, err = NewBoolField(shift); err != nil {
		return shift, err
	}
	if r.backward, shift, err = NewBoolField(shift); err != nil {
		return shift, err
	}
	if r.roundabout, shift, err = NewBoolField(shift); err != nil {
		return shift, err
	}
	r.defined = true
	return shift, nil
}

func (r *rootEncoder) IsAccessible(flags uint64, reverse bool) bool {
	if reverse {
		return r.backward.Get(flags)
	}
	return r.forward.Get(flags)
}

func (r *rootEncoder) SetAccess(flags uint64, forward, backward bool) (uint64, error) {
	if !r.defined {
		return flags, ErrBitsNotDefined
	}
	flags = r.forward.Set(flags, forward)
	return r.backward.Set(flags, backward), nil
}

func (r *rootEncoder) SetBool(flags uint64, key BoolKey, value bool) (uint64, error) {
	if !r.defined {
		return flags, ErrBitsNotDefined
	}
	switch key {
	case KeyRoundabout:
		return r.roundabout.Set(flags, value), nil
	default:
		return flags, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

func (r *rootEncoder) IsBool(flags uint64, key BoolKey) (bool, error) {
	switch key {
	case KeyRoundabout:
		return r.roundabout.Get(flags), nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}
