package domain

// StagedImage is the local copy of a fetched image. It belongs to the run
// that created it and is removed when that run ends.
type StagedImage struct {
	Path string
	Size int64
}

// Staged reports whether a file was created on disk.
func (s StagedImage) Staged() bool {
	return s.Path != ""
}
