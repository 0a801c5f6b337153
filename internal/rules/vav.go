package rules

import (
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

func hasHolam(l hebrew.Letter) bool {
	return l.HasDiac(hebrew.Holam) || l.HasDiac(hebrew.HolamHaser)
}

func countHolams(diac string) int {
	return strings.Count(diac, string(hebrew.Holam)) + strings.Count(diac, string(hebrew.HolamHaser))
}

// vav encodes its vowel in the consonant symbol, so the vowel diacritics of
// the letter are not emitted separately.
func vav(c context, s *step) bool {
	if c.cur.Char != 'ו' {
		return false
	}
	s.skipConsonant = true

	switch {
	case c.prev != nil && c.prev.HasDiac(hebrew.Shva) && hasHolam(c.cur):
		// לִגְוֹעַ
		s.emit("vo")
		s.skipDiacritics = true
	case c.next != nil && c.next.Char == 'ו':
		doubleVav(c, s)
	default:
		singleVav(c, s)
	}
	return true
}

func doubleVav(c context, s *step) {
	cur, next := c.cur, *c.next
	s.skipDiacritics = true
	switch holams := countHolams(cur.Diac() + next.Diac()); {
	case holams == 2:
		s.emit("wo")
		s.advance++
	case holams == 1:
		s.emit("vo")
		s.advance++
	case cur.Diac() == next.Diac():
		s.emit("vu")
		s.advance++
	case cur.HasDiac(hebrew.Hirik):
		s.emit("vi")
	case cur.HasDiac(hebrew.Shva) && next.Diac() == "":
		s.emit("v")
	case cur.HasDiac(hebrew.Kamatz) || cur.HasDiac(hebrew.Patah):
		s.emit("va")
	case cur.HasDiac(hebrew.Segol):
		s.emit("ve")
	default:
		s.skipDiacritics = false
	}
}

func singleVav(c context, s *step) {
	cur := c.cur
	s.skipDiacritics = true
	switch {
	case cur.HasDiac(hebrew.Patah) || cur.HasDiac(hebrew.Kamatz):
		s.emit("va")
	case cur.HasDiac(hebrew.Tsere), cur.HasDiac(hebrew.Segol):
		s.emit("ve")
	case cur.HasDiac(hebrew.Holam):
		s.emit("o")
	case cur.HasDiac(hebrew.Kubuts) || cur.HasDiac(hebrew.Dagesh):
		s.emit("u")
	case cur.HasDiac(hebrew.Shva) && c.prev == nil:
		s.emit("ve")
	case cur.HasDiac(hebrew.Hirik):
		s.emit("vi")
	case c.next != nil && cur.Diac() == "":
		// silent
	default:
		s.emit("v")
	}
}
