package domain

// Entry is one vocabulary item: a target-language word, its phonetic hint
// and the native-language translation.
type Entry struct {
	Word        string
	Phonetic    string
	Translation string
}
