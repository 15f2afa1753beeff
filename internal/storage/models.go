package storage

// Word is a single flashcard entry as persisted in a slot.
type Word struct {
	ID          string   `json:"id"`
	Word        string   `json:"word"`        // Headword, first cell of the source row
	Definitions []string `json:"definitions"` // Every cell of the source row, headword included
	Notes       string   `json:"notes"`
	ImgURL      string   `json:"imgUrl,omitempty"`
}

// CloneWords returns a deep copy of words so callers can't alias catalog state.
func CloneWords(words []Word) []Word {
	if words == nil {
		return nil
	}
	out := make([]Word, len(words))
	for i, w := range words {
		out[i] = w
		if w.Definitions != nil {
			out[i].Definitions = make([]string, len(w.Definitions))
			copy(out[i].Definitions, w.Definitions)
		}
	}
	return out
}
