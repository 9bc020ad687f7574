package circuit

import "strings"

// IsLowVoltage reports whether a device belongs to a low-voltage system
// (data, AV, security, control). The device type and description are
// matched together so either field can carry the identifying text.
// Low-voltage items are excluded from the panel schedule by the caller.
func IsLowVoltage(deviceType, description string) bool {
	text := strings.ToLower(deviceType + " " + description)
	for _, pat := range LowVoltagePatterns {
		if strings.Contains(text, pat) {
			return true
		}
	}
	return false
}

// RequiresGFCI reports whether the given location or description text
// names a wet or damp location that needs ground-fault protection.
// Substring containment: "Hallway Closet" matches both this check's
// counterpart keywords and the AFCI list.
func RequiresGFCI(text string) bool {
	return containsKeyword(text, GFCILocations)
}

// RequiresAFCI reports whether the text names a habitable area that needs
// arc-fault protection.
func RequiresAFCI(text string) bool {
	return containsKeyword(text, AFCILocations)
}

func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchDevicePattern returns the first dedicated-load pattern whose
// matcher accepts the description. First match wins over the ordered
// list; the second return value is false when nothing applies, which
// callers treat as a general-purpose circuit.
func MatchDevicePattern(description string) (DeviceAmpPattern, bool) {
	for _, pat := range DeviceAmpPatterns {
		if pat.Pattern.MatchString(description) {
			return pat, true
		}
	}
	return DeviceAmpPattern{}, false
}

// WireTypeForAmps returns the cable designation for a breaker amperage,
// consulting the 3-wire table when a shared neutral is needed. Unknown
// amperages fall back to the smallest standard gauge.
func WireTypeForAmps(amps int, needsThreeWire bool) string {
	if needsThreeWire {
		if wire, ok := WireSizing3Wire[amps]; ok {
			return wire
		}
		return WireSizing3Wire[15]
	}
	if wire, ok := WireSizing[amps]; ok {
		return wire
	}
	return WireSizing[15]
}
