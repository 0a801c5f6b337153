// Package rules is the letter to phoneme transducer. It walks segmented
// letters left to right and, for every letter, evaluates ordered context
// rules over the previous, current and next letter. A rule may emit
// phonemes, suppress the default consonant or vowel output and consume
// following letters.
package rules
