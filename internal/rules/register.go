package rules

import "sync"

// Catalogue returns every optimization category this engine ships,
// validated exactly once per process regardless of how many callers
// ask for it (the Driver calls this on every Optimize invocation).
func Catalogue() []Category {
	catalogueOnce.Do(func() {
		catalogue = []Category{
			additiveCategory,
			multiplicativeCategory,
			bitwiseCategory,
			logicalCategory,
			comparisonCategory,
			controlCategory,
			stringCategory,
			builtinsCategory,
		}
		Validate(catalogue)
	})
	return catalogue
}

var (
	catalogueOnce sync.Once
	catalogue     []Category
)
