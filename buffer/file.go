package buffer

import (
	"bufio"
	"fmt"
	"os"
)

// Open loads the named file. A missing file is reported with an error that
// wraps fs.ErrNotExist; callers fall back to New.
func Open(name string) (*Document, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("buffer: open %s: %w", name, err)
	}
	d := FromString(string(data))
	d.SetName(name)
	return d, nil
}

// Save writes every line followed by "\n" to the document's file and
// clears the dirty flag on success.
func (d *Document) Save() error {
	if d.name == "" {
		return ErrNoFileName
	}
	if err := d.writeFile(d.name); err != nil {
		return fmt.Errorf("buffer: save %s: %w", d.name, err)
	}
	d.dirty = false
	d.retype()
	return nil
}

// SaveAs renames the document and saves it. The file type follows the new
// name.
func (d *Document) SaveAs(name string) error {
	if name == "" {
		return ErrNoFileName
	}
	d.SetName(name)
	return d.Save()
}

func (d *Document) writeFile(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, l := range d.lines {
		if _, err := w.WriteString(l.Text()); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
