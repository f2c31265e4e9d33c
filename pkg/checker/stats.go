package checker

// Stats are the counters of one checking run.
type Stats struct {
	FilesChecked int `json:"files_checked" msgpack:"files"`
	DirsChecked  int `json:"dirs_checked" msgpack:"dirs"`
	Typos        int `json:"typos" msgpack:"typos"`
	Errors       int `json:"errors" msgpack:"errors"`
}

