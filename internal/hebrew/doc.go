// Package hebrew holds the Hebrew orthography building blocks shared by the
// phonemizer: the diacritic and phoneme tables, the Letter grapheme unit,
// text normalization and letter segmentation.
package hebrew
