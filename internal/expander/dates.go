package expander

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// monthNames are the vocalized Gregorian month names, January first.
var monthNames = []string{
	"יָ֫נוּאָר",
	"פֶ֫בְרוּאָר",
	"מֵ֫רְץ",
	"אֵפְרִיל",
	"מַאי",
	"י֫וּנִי",
	"י֫וּלִי",
	"א֫וֹגֻסְט",
	"סֶפְּטֶ֫מְבֶּר",
	"אוֹקְט֫וֹבֶּר",
	"נוֹבֶ֫מְבֶּר",
	"דֶּצֶ֫מְבֶּר",
}

// dayNames are indexed by time.Weekday, Sunday first.
var dayNames = []string{
	"יוֹם רִאשׁוֹן",
	"יוֹם שֵׁנִי",
	"יוֹם שְׁלִישִׁי",
	"יוֹם רֵבִיעִי",
	"יוֹם חֲמִישִׁי",
	"יוֹם שִׁישִׁי",
	"יוֹם שַׁבָּת",
}

var datePatterns = func() []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, layout := range []string{`^(\d{4})%[1]s(\d{1,2})%[1]s(\d{1,2})$`, `^(\d{1,2})%[1]s(\d{1,2})%[1]s(\d{4})$`} {
		for _, sep := range []string{"-", `\.`, "/"} {
			patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(layout, sep)))
		}
	}
	return patterns
}()

// ParseDate reads a year-month-day or day-month-year date separated by -, .
// or /. It reports false for anything else, including impossible dates.
func ParseDate(word string) (time.Time, bool) {
	for i, re := range datePatterns {
		m := re.FindStringSubmatch(word)
		if m == nil {
			continue
		}
		y, mo, d := m[1], m[2], m[3]
		if i >= len(datePatterns)/2 {
			y, d = m[3], m[1]
		}
		year, _ := strconv.Atoi(y)
		month, _ := strconv.Atoi(mo)
		day, _ := strconv.Atoi(d)
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

// DateToWords renders a date token as "<day> ב<month> <year>" with
// vocalized number words, optionally prefixed by the weekday name. Tokens
// that are not dates are returned unchanged.
func DateToWords(word string, includeDayName bool) string {
	t, ok := ParseDate(word)
	if !ok {
		return word
	}
	text := fmt.Sprintf("%s בֵּ%s %s",
		NumberToWords(strconv.Itoa(t.Day())),
		monthNames[t.Month()-1],
		NumberToWords(strconv.Itoa(t.Year())))
	if includeDayName {
		text = dayNames[t.Weekday()] + ", " + text
	}
	return text
}
