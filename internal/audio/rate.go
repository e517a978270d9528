package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rate strings are signed percentages relative to normal speed: "+0%"
// is unchanged, "+20%" is twenty percent faster, "-50%" half speed.

// FormatRate converts a speed multiplier into a signed rate string
func FormatRate(speed float64) string {
	return fmt.Sprintf("%+d%%", int(math.Round((speed-1.0)*100)))
}

// ParseRate converts a signed rate string into a speed multiplier.
// The empty string means normal speed.
func ParseRate(rate string) (float64, error) {
	if rate == "" {
		return 1.0, nil
	}

	trimmed := strings.TrimSuffix(rate, "%")
	if trimmed == rate {
		return 0, fmt.Errorf("rate must end with '%%': %q", rate)
	}
	if !strings.HasPrefix(trimmed, "+") && !strings.HasPrefix(trimmed, "-") {
		return 0, fmt.Errorf("rate must carry a sign: %q", rate)
	}

	percent, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	speed := 1.0 + float64(percent)/100.0
	if speed < 0.25 || speed > 4.0 {
		return 0, fmt.Errorf("rate %q maps to speed %.2f, outside 0.25-4.0", rate, speed)
	}

	return speed, nil
}
