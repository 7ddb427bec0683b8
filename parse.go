package animcurve

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultKeyframeType is the mode of parsed keyframes that do not name one.
const DefaultKeyframeType = KeyframeSmooth

// ParseKeyframeType returns the mode named s, as printed by
// KeyframeType.String. Matching ignores case and surrounding space;
// "catmullrom" is accepted as well. "none" is rejected.
func ParseKeyframeType(s string) (KeyframeType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "catmullrom" {
		return KeyframeCatmullRom, nil
	}
	for k := KeyframeConstant; k < KeyframeNone; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidKeyframe, s)
}

// ParseKeyframes parses a comma separated list of time:value[:type]
// keyframes, for example "0:0:linear, 1:2, 3:1:constant". Keyframes without
// a type get DefaultKeyframeType. Derivatives are left zero.
func ParseKeyframes(s string) ([]Keyframe, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty keyframe list", ErrInvalidKeyframe)
	}

	items := strings.Split(s, keyframeSeparator)
	keys := make([]Keyframe, 0, len(items))
	for i, item := range items {
		k, err := parseKeyframe(item)
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseKeyframe(item string) (Keyframe, error) {
	fields := strings.Split(strings.TrimSpace(item), fieldSeparator)
	if len(fields) < minKeyFields || len(fields) > maxKeyFields {
		return Keyframe{}, fmt.Errorf("%w: %q is not time:value[:type]", ErrInvalidKeyframe, item)
	}

	t, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Keyframe{}, fmt.Errorf("%w: time: %w", ErrInvalidKeyframe, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Keyframe{}, fmt.Errorf("%w: value: %w", ErrInvalidKeyframe, err)
	}

	k := Keyframe{Time: t, Value: v, Interpolation: DefaultKeyframeType}
	if len(fields) == maxKeyFields {
		if k.Interpolation, err = ParseKeyframeType(fields[2]); err != nil {
			return Keyframe{}, err
		}
	}
	return k, nil
}
