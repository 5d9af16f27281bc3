// SPDX-License-Identifier: MIT

package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the job file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a YAML job file. Unknown keys are rejected so typos in operand
// names surface early; unknown ops are NOT rejected here and are reported per
// job by the runner instead. Jobs without a name are named "job-<index>".
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("decode job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrEmptyFile
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i)
		}
	}

	return &f, nil
}
