package domain

// FileStatus is the lifecycle state of a file as reported by the data source
type FileStatus string

const (
	StatusAvailable FileStatus = "available"
	StatusScheduled FileStatus = "scheduled"
)

// FileRecord represents one row of the file table
type FileRecord struct {
	Name   string     `toml:"name" json:"name"`
	Device string     `toml:"device" json:"device"`
	Path   string     `toml:"path" json:"path"` // unique within one list
	Status FileStatus `toml:"status" json:"status"`
}
