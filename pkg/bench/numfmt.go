package bench

import (
	"math"
	"strconv"
	"strings"
)

// bigSIUnits and smallSIUnits mirror the original's kBigSIUnits/kSmallSIUnits:
// kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta / milli, micro, nano,
// pico, femto, atto, zepto, yocto.
const (
	bigSIUnits   = "kMGTPEZY"
	smallSIUnits = "munpfazy"
)

// formatSI renders value using an SI-style mantissa+prefix, grounded
// directly in ToExponentAndMantissa/ExponentToPrefix/HumanReadableNumber
// from original_source/src/benchmark.cc.
//
// threshold softens edge effects: a value only crosses into the next
// prefix once it exceeds threshold*base, and once it has crossed, the
// mantissa is allowed to grow up to threshold*base before crossing again
// (see DESIGN.md's note on this boundary behavior). precision is the
// number of fractional digits shown once a prefix has been chosen;
// unscaled values are shown without a forced decimal point. base is 1000
// for plain counts/rates, 1024 for byte quantities.
func formatSI(value float64, threshold, base float64, precision int) string {
	mantissa, exponent := toExponentAndMantissa(value, threshold, base, precision)
	return mantissa + exponentToPrefix(exponent)
}

func toExponentAndMantissa(value, threshold, base float64, precision int) (string, int) {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	// Adjust threshold so it never excludes values that can't be rendered
	// in `precision` digits.
	adjusted := math.Max(threshold, 1.0/math.Pow(10, float64(precision)))
	bigThreshold := adjusted * base
	smallThreshold := adjusted

	if value > bigThreshold {
		scaled := value
		for i := 0; i < len(bigSIUnits); i++ {
			scaled /= base
			if scaled <= bigThreshold {
				return sign + strconv.FormatFloat(scaled, 'f', precision, 64), i + 1
			}
		}
		return sign + formatUnscaled(value), 0
	}

	if value != 0 && value < smallThreshold {
		scaled := value
		for i := 0; i < len(smallSIUnits); i++ {
			scaled *= base
			if scaled >= smallThreshold {
				return sign + strconv.FormatFloat(scaled, 'f', precision, 64), -i - 1
			}
		}
		return sign + formatUnscaled(value), 0
	}

	return sign + formatUnscaled(value), 0
}

// formatUnscaled renders a mantissa that was never assigned a prefix,
// without a forced decimal point -- matching the original's default
// ostream formatting, which drops insignificant trailing zeros.
func formatUnscaled(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(v, 'f', 6, 64), "0"), ".")
}

func exponentToPrefix(exponent int) string {
	if exponent == 0 {
		return ""
	}
	units := bigSIUnits
	index := exponent - 1
	if exponent < 0 {
		units = smallSIUnits
		index = -exponent - 1
	}
	if index >= len(units) {
		return ""
	}
	return string(units[index])
}

// humanReadableNumber renders n the way the console reporter presents
// rates: threshold 1.1 softens edge effects, one fractional digit, base
// 1024 for byte-oriented quantities.
func humanReadableNumber(n float64) string {
	return formatSI(n, 1.1, 1024, 1)
}

// appendHumanReadable decorates an instance name with a parameter value,
// rounding down to the nearest SI prefix (threshold 1.0, zero decimals),
// matching the original's AppendHumanReadable.
func appendHumanReadable(n int) string {
	return formatSI(float64(n), 1.0, 1024, 0)
}
