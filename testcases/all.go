package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"holes":     holeCases,
	"stroke":    strokeCases,
	"round":     roundCases,
	"mapping":   mappingCases,
	"precision": precisionCases,
	"large":     largeCases,
	"complex":   complexCases,
}
