package variant

// Matches reports whether a SKU attribute map satisfies a selection.
// Every selected option must be present in the SKU attributes with an
// identical value; the selection may cover only a subset of the attributes.
// Comparison is case-sensitive with no trimming — values are canonical
// strings from the product option records.
func Matches(skuAttributes map[string]string, selection map[string]string) bool {
	for name, want := range selection {
		if got, ok := skuAttributes[name]; !ok || got != want {
			return false
		}
	}
	return true
}
