package rules

import "github.com/tsachovadia/RapTrainer/internal/hebrew"

// letterRules handle silent letters, shin/sin and the furtive patah.
var letterRules = []rule{
	{"nikud haser", nikudHaser},
	{"silent alef", silentAlef},
	{"silent yod", silentYod},
	{"sin", sin},
	{"shin after sin", shinAfterSin},
	{"patah gnuva", patahGnuva},
}

// markRules handle geresh, dagesh and vav. They are skipped for letters
// marked as not pronounced.
var markRules = []rule{
	{"geresh", geresh},
	{"dagesh", dagesh},
	{"vav", vav},
}

func nikudHaser(c context, s *step) bool {
	if !c.cur.Has(hebrew.NikudHaser) {
		return false
	}
	s.skipConsonant = true
	s.skipDiacritics = true
	return true
}

// A bare alef inside a word is not pronounced unless a vav follows.
func silentAlef(c context, s *step) bool {
	if c.cur.Char != 'א' || c.cur.Diac() != "" || c.prev == nil {
		return false
	}
	if c.next != nil && c.next.Char != 'ו' {
		s.skipConsonant = true
	}
	return true
}

// A bare yod inside a word is absorbed into the preceding vowel.
func silentYod(c context, s *step) bool {
	if c.cur.Char != 'י' || c.next == nil || c.cur.Diac() != "" || c.prev == nil {
		return false
	}
	if c.prev.Char == 'א' && c.prev.Diac() == string(hebrew.Tsere) {
		return false
	}
	if c.next.Char == 'ו' && c.next.Diac() != "" && !c.next.HasDiac(hebrew.Shva) {
		return false
	}
	s.skipConsonant = true
	return true
}

func sin(c context, s *step) bool {
	if c.cur.Char != 'ש' || !c.cur.HasDiac(hebrew.SinDot) {
		return false
	}
	if c.next != nil && c.next.Char == 'ש' && c.next.Diac() == "" &&
		(c.cur.HasDiac(hebrew.Patah) || c.cur.HasDiac(hebrew.Kamatz)) {
		// יששכר
		s.emit("sa")
		s.skipConsonant = true
		s.skipDiacritics = true
		s.advance++
		return true
	}
	s.emit("s")
	s.skipConsonant = true
	return true
}

func shinAfterSin(c context, s *step) bool {
	if c.cur.Char != 'ש' || c.cur.Diac() != "" || c.prev == nil || !c.prev.HasDiac(hebrew.SinDot) {
		return false
	}
	s.emit("s")
	s.skipConsonant = true
	return true
}

var gnuvaPhonemes = map[rune]string{
	'ח': "ax",
	'ה': "ah",
	'ע': "a",
}

// A word final het, he or ayin with patah is read vowel first.
func patahGnuva(c context, s *step) bool {
	p, ok := gnuvaPhonemes[c.cur.Char]
	if !ok || c.next != nil || !c.cur.HasDiac(hebrew.Patah) {
		return false
	}
	s.emit(p)
	s.skipConsonant = true
	s.skipDiacritics = true
	return true
}

func geresh(c context, s *step) bool {
	p, ok := hebrew.GereshPhonemes[c.cur.Char]
	if !ok || !c.cur.Has(hebrew.EnGeresh) {
		return false
	}
	s.emit(p)
	s.skipConsonant = true
	if c.cur.Char == 'ת' {
		s.skipDiacritics = true
	}
	return true
}

func dagesh(c context, s *step) bool {
	if !c.cur.HasDiac(hebrew.Dagesh) {
		return false
	}
	p, ok := hebrew.LetterPhonemes[string(c.cur.Char)+string(hebrew.Dagesh)]
	if !ok {
		return false
	}
	s.emit(p)
	s.skipConsonant = true
	return true
}
