package hadith

// Paginate slices records by page/limit. Pages are 1-based; out-of-range
// pages return an empty slice with HasMore=false, never an error.
func Paginate(records []Record, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	total := len(records)
	start := (page - 1) * limit
	if start >= total {
		return Page{Hadiths: []Record{}, Total: total, HasMore: false}
	}

	end := start + limit
	if end > total {
		end = total
	}

	slice := records[start:end]
	return Page{
		Hadiths: slice,
		Total:   total,
		HasMore: start+len(slice) < total,
	}
}

// FilterByGrade keeps only records with the given grade. An empty grade
// string means no filtering.
func FilterByGrade(records []Record, grade string) []Record {
	if grade == "" {
		return records
	}
	want := NormalizeGrade(grade)
	var out []Record
	for _, r := range records {
		if r.Grade == want {
			out = append(out, r)
		}
	}
	return out
}

const defaultPageSize = 25
