package host

import (
	"fmt"
	"path"

	fs "github.com/ungerik/go-fs"
)

// Dir is a Memory host that additionally saves
// every download as file in a directory.
type Dir struct {
	*Memory
	Dir fs.File
}

// NewDir returns a Dir host at location saving downloads into dir.
func NewDir(location string, dir fs.File) *Dir {
	d := &Dir{Memory: NewMemory(location), Dir: dir}
	d.DownloadFunc = d.save
	return d
}

func (d *Dir) save(download Download) error {
	if !d.Dir.IsDir() {
		return fmt.Errorf("download directory %s does not exist", d.Dir)
	}
	file := d.File(download.Filename)
	if err := file.WriteAll(download.Blob.FileData); err != nil {
		return fmt.Errorf("failed to save %s: %w", file, err)
	}
	return nil
}

// File returns the file a download with filename is saved to.
// Only the base name of filename is used.
func (d *Dir) File(filename string) fs.File {
	return d.Dir.Join(path.Base("/" + filename))
}
