package extractor

// Stats summarizes an extracted data set.
type Stats struct {
	Objects int // nested objects, the root included
	Texts   int // leaves other than image placeholders
	Images  int // image placeholders
}

// Summarize counts the nodes of v. Leaves equal to placeholder count as
// images; an empty placeholder selects the default one.
func Summarize(v Value, placeholder string) Stats {
	if placeholder == "" {
		placeholder = Config{}.placeholder()
	}

	var s Stats
	summarize(v, placeholder, &s)
	return s
}

func summarize(v Value, placeholder string, s *Stats) {
	switch v := v.(type) {
	case Leaf:
		if string(v) == placeholder {
			s.Images++
		} else {
			s.Texts++
		}
	case *Object:
		s.Objects++
		for _, k := range v.keys {
			summarize(v.fields[k], placeholder, s)
		}
	}
}
