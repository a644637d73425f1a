package ocr

import (
	"regexp"
	"strings"
)

var (
	reEmailish = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhoneish = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-.]?)?\(?\d{2,4}\)?[\s\-.]?\d{3}[\s\-.]?\d{3,5}`)
	reURLish   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
)

// ScoreText ranks OCR output variants by contact-info signal: emails are
// worth 10, phone-shaped digit groups 5, and every remaining word 1.
func ScoreText(txt string) int {
	emails := len(reEmailish.FindAllString(txt, -1))
	phones := len(rePhoneish.FindAllString(txt, -1))
	return emails*10 + phones*5 + len(strings.Fields(txt))
}

// heuristicConfidence estimates recognition quality from decoded text
// characteristics. Card scans that yield an address, a phone number, or a
// URL almost always decoded cleanly.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base
	if reEmailish.MatchString(txt) {
		score += 0.3
	}
	if rePhoneish.MatchString(txt) {
		score += 0.2
	}
	if reURLish.MatchString(txt) {
		score += 0.1
	}
	if len(txt) > 80 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
