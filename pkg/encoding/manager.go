package encoding

import (
	"fmt"
	"strings"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// EncodingManager. several vehicle profiles sharing one flags word. every encoder chain gets the bits right after the
// previous one, so the encoder order is part of the on-disk format.
type EncodingManager struct {
	encoders     []FlagEncoder
	byName       map[string]FlagEncoder
	usedBits     int
	usedTurnBits int
}

func NewEncodingManager(log *zap.Logger, encoders ...FlagEncoder) (*EncodingManager, error) {
	if len(encoders) == 0 {
		return nil, fmt.Errorf("%w: no encoder", ErrUnknownProfile)
	}
	em := &EncodingManager{
		encoders: make([]FlagEncoder, 0, len(encoders)),
		byName:   make(map[string]FlagEncoder, len(encoders)),
	}

	shift, turnShift := 0, 0
	for _, enc := range encoders {
		name := enc.String()
		if _, ok := em.byName[name]; ok {
			return nil, fmt.Errorf("%w: %s registered twice", ErrBitsAlreadyUsed, name)
		}

		next, err := enc.DefineWayBits(shift)
		if err != nil {
			return nil, fmt.Errorf("define way bits of %s: %w", name, err)
		}
		nextTurn, err := enc.DefineTurnBits(turnShift)
		if err != nil {
			return nil, fmt.Errorf("define turn bits of %s: %w", name, err)
		}
		log.Debug("encoder bits defined", zap.String("encoder", name),
			zap.Int("firstBit", shift), zap.Int("nextFreeBit", next),
			zap.Int("firstTurnBit", turnShift), zap.Int("nextFreeTurnBit", nextTurn))

		shift, turnShift = next, nextTurn
		em.encoders = append(em.encoders, enc)
		em.byName[name] = enc
	}
	em.usedBits = shift
	em.usedTurnBits = turnShift
	log.Info("encoding manager ready", zap.String("encoders", em.String()), zap.Int("usedBits", shift))
	return em, nil
}

// NewEncodingManagerFor. build & register the encoder chains of the given profiles with the same options.
func NewEncodingManagerFor(log *zap.Logger, opts Options, profiles ...string) (*EncodingManager, error) {
	encoders := make([]FlagEncoder, 0, len(profiles))
	for _, profile := range profiles {
		enc, err := New(profile, opts)
		if err != nil {
			return nil, err
		}
		encoders = append(encoders, enc)
	}
	return NewEncodingManager(log, encoders...)
}

func (em *EncodingManager) GetEncoder(name string) (FlagEncoder, error) {
	enc, ok := em.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in %s", ErrUnknownProfile, name, em.String())
	}
	return enc, nil
}

func (em *EncodingManager) Supports(name string) bool {
	_, ok := em.byName[name]
	return ok
}

func (em *EncodingManager) GetEncoders() []FlagEncoder {
	return em.encoders
}

func (em *EncodingManager) GetUsedBits() int {
	return em.usedBits
}

func (em *EncodingManager) GetUsedTurnBits() int {
	return em.usedTurnBits
}

// AcceptWay. true if at least one encoder can use the way.
func (em *EncodingManager) AcceptWay(tags osm.Tags) bool {
	for _, enc := range em.encoders {
		if enc.AcceptWay(tags) {
			return true
		}
	}
	return false
}

// HandleWayTags. combined flags of all encoders. fields are disjoint so or-ing them is lossless.
func (em *EncodingManager) HandleWayTags(tags osm.Tags) (uint64, error) {
	var flags uint64
	for _, enc := range em.encoders {
		encFlags, err := enc.HandleWayTags(tags)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", enc.String(), err)
		}
		flags |= encFlags
	}
	return flags, nil
}

func (em *EncodingManager) String() string {
	names := make([]string, 0, len(em.encoders))
	for _, enc := range em.encoders {
		names = append(names, enc.String())
	}
	return strings.Join(names, ",")
}
