package encoding

import (
	"strconv"
	"strings"

	"github.com/lintang-b-s/navigatorx-stopover/pkg/util"
	"go.uber.org/zap"
)

const (
	descriptorSep   = ","
	descriptorField = "|"

	keySpeedBits   = "speed_bits"
	keySpeedFactor = "speed_factor"
	keyTurnCosts   = "turn_costs"
)

// Descriptor. profile + the options that decide its bit layout, e.g.
// car_stopover|speed_bits=5|speed_factor=5|turn_costs=false
type Descriptor struct {
	Profile string
	Options Options
}

func (d Descriptor) String() string {
	return strings.Join([]string{
		d.Profile,
		keySpeedBits + "=" + strconv.Itoa(d.Options.SpeedBits),
		keySpeedFactor + "=" + strconv.FormatFloat(d.Options.SpeedFactor, 'f', -1, 64),
		keyTurnCosts + "=" + strconv.FormatBool(d.Options.TurnCosts),
	}, descriptorField)
}

// sameLayout. block fords only matters while importing, so it is not compared.
func (d Descriptor) sameLayout(opts Options) bool {
	return d.Options.SpeedBits == opts.SpeedBits &&
		d.Options.SpeedFactor == opts.SpeedFactor &&
		d.Options.TurnCosts == opts.TurnCosts
}

// ParseDescriptors. inverse of EncodingManager.Descriptor. every layout key must be present.
func ParseDescriptors(s string) ([]Descriptor, error) {
	if strings.TrimSpace(s) == "" {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "empty encoder descriptor")
	}

	parts := strings.Split(s, descriptorSep)
	descriptors := make([]Descriptor, 0, len(parts))
	for _, part := range parts {
		d, err := parseDescriptor(part)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func parseDescriptor(s string) (Descriptor, error) {
	tokens := strings.Split(s, descriptorField)
	d := Descriptor{Profile: tokens[0], Options: DefaultOptions()}

	seen := make(map[string]bool, 3)
	for _, token := range tokens[1:] {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return d, util.WrapErrorf(nil, util.ErrInvalidConfig, "encoder descriptor %q: malformed option %q", s, token)
		}

		var err error
		switch key {
		case keySpeedBits:
			d.Options.SpeedBits, err = strconv.Atoi(value)
		case keySpeedFactor:
			d.Options.SpeedFactor, err = strconv.ParseFloat(value, 64)
		case keyTurnCosts:
			d.Options.TurnCosts, err = strconv.ParseBool(value)
		default:
			return d, util.WrapErrorf(nil, util.ErrInvalidConfig, "encoder descriptor %q: unknown option %q", s, key)
		}
		if err != nil {
			return d, util.WrapErrorf(err, util.ErrInvalidConfig, "encoder descriptor %q: option %q", s, key)
		}
		seen[key] = true
	}

	for _, key := range []string{keySpeedBits, keySpeedFactor, keyTurnCosts} {
		if !seen[key] {
			return d, util.WrapErrorf(nil, util.ErrInvalidConfig, "encoder descriptor %q lacks %s", s, key)
		}
	}
	return d, nil
}

// NewEncodingManagerFromDescriptor. rebuild the encoders a graph was imported with, in the same order.
func NewEncodingManagerFromDescriptor(log *zap.Logger, s string) (*EncodingManager, error) {
	descriptors, err := ParseDescriptors(s)
	if err != nil {
		return nil, err
	}
	encoders := make([]FlagEncoder, 0, len(descriptors))
	for _, d := range descriptors {
		enc, err := New(d.Profile, d.Options)
		if err != nil {
			return nil, err
		}
		encoders = append(encoders, enc)
	}
	return NewEncodingManager(log, encoders...)
}

// Descriptor. profiles + layout options of all encoders, persisted next to the graph.
func (em *EncodingManager) Descriptor() string {
	parts := make([]string, 0, len(em.encoders))
	for _, enc := range em.encoders {
		parts = append(parts, Descriptor{Profile: enc.String(), Options: enc.GetOptions()}.String())
	}
	return strings.Join(parts, descriptorSep)
}

// CheckOptions. fails with util.ErrInvalidConfig when an encoder was built with another bit layout than opts
// describes, decoding flags with opts would then read the wrong bits.
func (em *EncodingManager) CheckOptions(opts Options) error {
	for _, enc := range em.encoders {
		d := Descriptor{Profile: enc.String(), Options: enc.GetOptions()}
		if !d.sameLayout(opts) {
			want := Descriptor{Profile: enc.String(), Options: opts}
			return util.WrapErrorf(nil, util.ErrInvalidConfig, "graph encoded with %s, config has %s",
				d.String(), want.String())
		}
	}
	return nil
}
