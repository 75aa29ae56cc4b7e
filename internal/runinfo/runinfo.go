// Package runinfo records what a scoring run consumed and produced.
package runinfo

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the run summary file inside the output tmp directory.
const FileName = "sliding_window_run.toml"

// Info is the run summary.
type Info struct {
	Version   string    `toml:"version" comment:"Run"`
	Command   string    `toml:"command"`
	StartedAt time.Time `toml:"started-at"`
	Elapsed   string    `toml:"elapsed"`

	Species     string `toml:"species" comment:"Inputs"`
	PeakTable   string `toml:"peak-table"`
	TFNamesFile string `toml:"tf-names-file,omitempty"`
	MotifDir    string `toml:"motif-dir,omitempty"`
	GenomeDir   string `toml:"genome-dir,omitempty"`
	Workers     int    `toml:"workers"`

	Peaks      int `toml:"peaks" comment:"Scanned data"`
	PeaksFound int `toml:"peaks-found"`
	MaxPeakLen int `toml:"max-peak-len"`
	TFRows     int `toml:"tf-rows"`
	Motifs     int `toml:"motifs"`

	Scheduled int `toml:"tasks-scheduled" comment:"Tasks"`
	Succeeded int `toml:"tasks-succeeded"`
	Failed    int `toml:"tasks-failed"`

	CacheFiles int    `toml:"cache-files" comment:"Output"`
	Rows       int    `toml:"rows"`
	Output     string `toml:"output"`
}

// Write stores info at path as TOML.
func Write(path string, info *Info) error {
	data, err := toml.Marshal(info)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a summary written by Write.
func Read(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v := &Info{}
	err = toml.Unmarshal(data, v)
	return v, err
}
