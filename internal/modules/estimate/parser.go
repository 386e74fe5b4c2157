package estimate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	lowRangePattern  = rangePattern("Low Estimate Range")
	highRangePattern = rangePattern("High Estimate Range")
)

// space is any Unicode whitespace. RE2's \s alone is ASCII only and misses the
// no-break spaces models like to put around the colon and hyphen.
const space = `[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]*`

// rangePattern matches "<label>: $1,000 - $2,000". Colon and dollar signs are optional,
// labels match in any case.
func rangePattern(label string) *regexp.Regexp {
	const amount = `\$?(\d+(?:,\d+)*)`
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `:?` + space + amount + space + `-` + space + amount)
}

// ExtractRanges finds the low and high ranges in a model reply.
// ok is false if either label is missing or a number does not fit in an int.
func ExtractRanges(text string) (Ranges, bool) {
	lowStart, lowEnd, ok := matchRange(lowRangePattern, text)
	if !ok {
		return Ranges{}, false
	}
	highStart, highEnd, ok := matchRange(highRangePattern, text)
	if !ok {
		return Ranges{}, false
	}
	return Ranges{LowStart: lowStart, LowEnd: lowEnd, HighStart: highStart, HighEnd: highEnd}, true
}

func matchRange(re *regexp.Regexp, text string) (int, int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	start, err := parseAmount(m[1])
	if err != nil {
		return 0, 0, false
	}
	end, err := parseAmount(m[2])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

func parseAmount(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}
