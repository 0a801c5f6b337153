package expander

import (
	"regexp"
	"strconv"
	"strings"
)

// hourNames are indexed by hour, 0 to 12.
var hourNames = []string{
	"אֶפֶס",
	"אַחַת",
	"שְׁתַּ֫יִם",
	"שָׁלוֹשׁ",
	"אַ֫רְבַּע",
	"חָמֵשׁ",
	"שֵׁשׁ",
	"שֶׁ֫בַע",
	"שְׁמ֫וֹנֵה",
	"תֵּ֫שַׁע",
	"עֵ֫שֵׂר",
	"אַחַת עֶשְׂרֵה",
	"שְׁתֵּים עֶשְׂרֵה",
}

// minuteTens are indexed by the tens digit of the minutes.
var minuteTens = []string{
	"",
	"עֵשֵׂר",
	"עֶשְׂרִים",
	"שְׁלוֹשִׁים",
	"אַרְבָּעִים",
	"חֲמִשִּׁים",
}

// minuteTeens cover minutes 10 to 19.
var minuteTeens = []string{
	"עֵ֫שֵׂר",
	"אַחַת עֶשְׂרֵה",
	"שְׁתֵּים עֶשְׂרֵה",
	"שְׁלוֹשׁ עֶשְׂרֵה",
	"אַרְבַּע עֶשְׂרֵה",
	"חֲמֵשׁ עֶשְׂרֵה",
	"שֵׁשׁ עֶשְׂרֵה",
	"שְׁבַע עֶשְׂרֵה",
	"שְׁמוֹנֶה עֶשְׂרֵה",
	"תְּשַׁע עֶשְׂרֵה",
}

const (
	wordMinutes  = "דַּקּוֹת"
	wordTimeAnd  = "וֵ"
	wordTwoShort = "שְׁתֵּי"
)

var timePattern = regexp.MustCompile(`(\d{1,2})([apm]{2})|(\d{1,2}):(\d{2})`)

// TimeToWords replaces HH:MM and 7pm style times inside word with
// vocalized Hebrew words. It reports false when a matched time is out of
// range, in which case word should be left to the next parser.
func TimeToWords(word string) (string, bool) {
	ok := true
	out := timePattern.ReplaceAllStringFunc(word, func(match string) string {
		m := timePattern.FindStringSubmatch(strings.ToLower(match))
		var h, mins int
		switch {
		case m[3] != "":
			h, _ = strconv.Atoi(m[3])
			mins, _ = strconv.Atoi(m[4])
		default:
			h, _ = strconv.Atoi(m[1])
			switch m[2] {
			case "am":
				if h == 12 {
					h = 0
				}
			case "pm":
				if h != 12 {
					h += 12
				}
			}
		}
		words, valid := clockToWords(h, mins)
		if !valid {
			ok = false
			return match
		}
		return words
	})
	if !ok {
		return word, false
	}
	return out, true
}

// clockToWords reads a 12 hour clock: midnight is twelve, afternoon hours
// wrap around.
func clockToWords(h, m int) (string, bool) {
	switch {
	case h == 0:
		h = 12
	case h > 12:
		h -= 12
	}
	if h < 0 || h > 12 || m < 0 || m >= 60 {
		return "", false
	}

	hour := hourNames[h]
	switch {
	case m == 0:
		return hour, true
	case m < 10:
		minute := hourNames[m]
		if m == 2 {
			minute = wordTwoShort
		}
		return strings.Join([]string{hour, wordTimeAnd + minute, wordMinutes}, " "), true
	case m < 20:
		return strings.Join([]string{hour, wordTimeAnd + minuteTeens[m-10], wordMinutes}, " "), true
	default:
		parts := []string{hour, wordTimeAnd + minuteTens[m/10]}
		if m%10 != 0 {
			parts = append(parts, wordTimeAnd+hourNames[m%10])
		}
		return strings.Join(append(parts, wordMinutes), " "), true
	}
}
