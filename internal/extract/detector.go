package extract

import (
	"sort"
	"sync"
)

// Detector is the shared contract for all field detectors: given the
// normalized line sequence, emit zero or more candidates for one field
// type, independent of any other detector's state.
type Detector interface {
	Field() FieldType
	Detect(lines []string) []Candidate
}

// DefaultDetectors returns the fixed detector set, one per field type.
func DefaultDetectors() []Detector {
	return []Detector{
		EmailDetector{},
		PhoneDetector{},
		WebsiteDetector{},
		NameDetector{},
		TitleDetector{},
		CompanyDetector{},
	}
}

// RunDetectors fans the detectors out concurrently (they are stateless and
// share nothing) and returns their combined candidates in a deterministic
// order: by line, then by field priority, then by descending confidence.
func RunDetectors(lines []string, detectors []Detector) []Candidate {
	results := make([][]Candidate, len(detectors))
	var wg sync.WaitGroup
	for i, d := range detectors {
		wg.Add(1)
		go func(i int, d Detector) {
			defer wg.Done()
			results[i] = d.Detect(lines)
		}(i, d)
	}
	wg.Wait()

	var all []Candidate
	for _, cs := range results {
		all = append(all, cs...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}
		if fieldPriority[all[i].Field] != fieldPriority[all[j].Field] {
			return fieldPriority[all[i].Field] < fieldPriority[all[j].Field]
		}
		return all[i].Confidence > all[j].Confidence
	})
	return all
}
