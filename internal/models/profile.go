package models

// StudentProfile is the personal data shown on the biodata form.
type StudentProfile struct {
	FullName       string   `json:"full_name"`
	NIM            string   `json:"nim"`
	Prodi          string   `json:"prodi"`
	ProdiOptions   []string `json:"prodi_options"`
	EntryYear      int      `json:"entry_year"`
	MailingAddress string   `json:"mailing_address"`
}

// SubmissionProgress summarises where the student's SKPI request currently is.
type SubmissionProgress struct {
	Stage   string `json:"stage"`
	Badge   string `json:"badge"`
	Percent int    `json:"percent"`
}

// SummaryStat is a labelled counter on the student dashboard.
type SummaryStat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
