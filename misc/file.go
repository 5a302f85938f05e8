package misc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteFile
// Creates or truncates fileName and hands a buffered writer for it to write. The file is flushed and closed before
// returning and any failure along the way is reported with the file name.
func WriteFile(fileName string, write func(w io.Writer) error) error {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	// create/truncate file for writing
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create file %s - %w", fileName, err)
	}

	buffered := bufio.NewWriter(file)
	if err = write(buffered); err != nil {
		file.Close()
		return fmt.Errorf("unable to write file %s - %w", fileName, err)
	}
	if err = buffered.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("unable to write file %s - %w", fileName, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("unable to close file %s - %w", fileName, err)
	}
	return nil
}
