package models

// Interview is a single mock-interview configuration plus its outcome.
// JSON field names match the layout already present in stored data.
type Interview struct {
	ID           string   `json:"id"`
	Role         string   `json:"role"`
	Experience   string   `json:"experience"`
	Type         string   `json:"type"`
	Difficulty   string   `json:"difficulty"`
	Duration     string   `json:"duration"`
	Technologies []string `json:"technologies"`
	Focus        string   `json:"focus"`
	Status       string   `json:"status"`
	Date         string   `json:"date"`
	UserID       string   `json:"userId"`
	Score        int      `json:"score"`
}

func (i Interview) IsCompleted() bool {
	return i.Status == StatusCompleted
}

// Clone returns a copy that does not share the technologies slice.
func (i Interview) Clone() Interview {
	out := i
	if i.Technologies != nil {
		out.Technologies = append([]string(nil), i.Technologies...)
	}
	return out
}

// CloneInterviews deep-copies a list of interviews.
func CloneInterviews(in []Interview) []Interview {
	out := make([]Interview, len(in))
	for idx, iv := range in {
		out[idx] = iv.Clone()
	}
	return out
}
